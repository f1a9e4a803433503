package types

import "time"

type TweetItem struct {
	ID           uint64       `json:"id"`
	UserID       uint64       `json:"userId"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	User         *UserProfile `json:"user"`
	RepliesCount int64        `json:"repliesCount"`
	LikesCount   int64        `json:"likesCount"`
}

type TweetDetail struct {
	TweetItem
	Replies []*ReplyItem `json:"replies"`
}

type ReplyItem struct {
	ID        uint64       `json:"id"`
	UserID    uint64       `json:"userId"`
	TweetID   uint64       `json:"tweetId"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	User      *UserProfile `json:"user"`
}

// RepliedTweet 用户发出的回复，附带被回复的推文及其作者
type RepliedTweet struct {
	ID        uint64       `json:"id"`
	UserID    uint64       `json:"userId"`
	TweetID   uint64       `json:"tweetId"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Tweet     *RepliedItem `json:"tweet"`
}

type RepliedItem struct {
	ID          uint64       `json:"id"`
	UserID      uint64       `json:"userId"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	User        *UserProfile `json:"user"`
}
