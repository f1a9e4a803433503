package models

import "time"

// Like 点赞记录，User 与 Tweet 的多对多关联
// 唯一键: user_id + tweet_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_like_user_tweet,priority:1" json:"user_id"`
	TweetID   uint64    `gorm:"column:tweet_id;not null;uniqueIndex:uk_like_user_tweet,priority:2;index:idx_like_tweet" json:"tweet_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Like) TableName() string { return "likes" }
