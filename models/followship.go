package models

import (
	"time"
)

// Followship 有向关注边：FollowerID 关注了 FollowingID，不隐含反向关系
type Followship struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	FollowerID  uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow_pair,priority:1" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;not null;uniqueIndex:uk_follow_pair,priority:2;index:idx_follow_following" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Followship) TableName() string {
	return "followships"
}
