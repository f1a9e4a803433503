package types

import "time"

// UserProfile 对外展示的用户信息，不含密码
type UserProfile struct {
	ID           uint64    `json:"id"`
	Account      string    `json:"account"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Cover        string    `json:"cover"`
	Introduction string    `json:"introduction"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UserDetail struct {
	UserProfile
	FollowersCount  int64 `json:"followersCount"`
	FollowingsCount int64 `json:"followingsCount"`
}

// Follower 粉丝列表项。IsFollowing: 目标用户是否回关了该粉丝
type Follower struct {
	UserProfile
	FollowerID  uint64 `json:"followerId"`
	IsFollowing bool   `json:"isFollowing"`
}

// Following 关注列表项。IsFollowed: 被关注者是否也关注了目标用户
type Following struct {
	UserProfile
	FollowingID uint64 `json:"followingId"`
	IsFollowed  bool   `json:"isFollowed"`
}
