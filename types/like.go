package types

import "time"

// LikedTweet 点赞记录。外键字段已去掉，User 为点赞者
type LikedTweet struct {
	ID        uint64            `json:"id"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Tweet     *LikedTweetDetail `json:"tweet"`
	User      *UserProfile      `json:"user"`
}

type LikedTweetDetail struct {
	ID           uint64    `json:"id"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	RepliesCount int64     `json:"repliesCount"`
	LikesCount   int64     `json:"likesCount"`
}
