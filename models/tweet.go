package models

import "time"

type Tweet struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_tweet_user" json:"user_id"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_tweet_created" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}
