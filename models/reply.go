package models

import "time"

// Reply 推文回复
type Reply struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_reply_user" json:"user_id"`
	TweetID   uint64    `gorm:"column:tweet_id;not null;index:idx_reply_tweet" json:"tweet_id"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reply) TableName() string {
	return "replies"
}
