package service

import (
	"Chirp/models"
	"Chirp/types"
)

// 对外输出只能经过这里构造的 types 投影，models.User 不会直接出现在响应中

func SanitizeUser(u *models.User) *types.UserProfile {
	if u == nil {
		return nil
	}
	return &types.UserProfile{
		ID:           u.ID,
		Account:      u.Account,
		Name:         u.Name,
		Email:        u.Email,
		Avatar:       u.Avatar,
		Cover:        u.Cover,
		Introduction: u.Introduction,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func SanitizeUserDetail(u *models.User, followers, followings int64) *types.UserDetail {
	return &types.UserDetail{
		UserProfile:     *SanitizeUser(u),
		FollowersCount:  followers,
		FollowingsCount: followings,
	}
}

func sanitizeTweet(t *CountedTweet, author *models.User) *types.TweetItem {
	return &types.TweetItem{
		ID:           t.ID,
		UserID:       t.UserID,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		User:         SanitizeUser(author),
		RepliesCount: t.Replies,
		LikesCount:   t.Likes,
	}
}

// SanitizeTweets 作者已不存在的推文被跳过
func SanitizeTweets(tweets []*CountedTweet, authors map[uint64]*models.User) []*types.TweetItem {
	res := make([]*types.TweetItem, 0, len(tweets))
	for _, t := range tweets {
		author, ok := authors[t.UserID]
		if !ok {
			continue
		}
		res = append(res, sanitizeTweet(t, author))
	}
	return res
}

func SanitizeTweetDetail(t *CountedTweet, author *models.User, replies []*types.ReplyItem) *types.TweetDetail {
	if replies == nil {
		replies = []*types.ReplyItem{}
	}
	return &types.TweetDetail{
		TweetItem: *sanitizeTweet(t, author),
		Replies:   replies,
	}
}

func SanitizeReplies(replies []*models.Reply, authors map[uint64]*models.User) []*types.ReplyItem {
	res := make([]*types.ReplyItem, 0, len(replies))
	for _, r := range replies {
		author, ok := authors[r.UserID]
		if !ok {
			continue
		}
		res = append(res, &types.ReplyItem{
			ID:        r.ID,
			UserID:    r.UserID,
			TweetID:   r.TweetID,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			User:      SanitizeUser(author),
		})
	}
	return res
}

// SanitizeRepliedTweets 被回复推文或其作者已删除的回复被跳过
func SanitizeRepliedTweets(replies []*models.Reply, tweets map[uint64]*models.Tweet, authors map[uint64]*models.User) []*types.RepliedTweet {
	res := make([]*types.RepliedTweet, 0, len(replies))
	for _, r := range replies {
		t, ok := tweets[r.TweetID]
		if !ok {
			continue
		}
		author, ok := authors[t.UserID]
		if !ok {
			continue
		}
		res = append(res, &types.RepliedTweet{
			ID:        r.ID,
			UserID:    r.UserID,
			TweetID:   r.TweetID,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			Tweet: &types.RepliedItem{
				ID:          t.ID,
				UserID:      t.UserID,
				Description: t.Description,
				CreatedAt:   t.CreatedAt,
				UpdatedAt:   t.UpdatedAt,
				User:        SanitizeUser(author),
			},
		})
	}
	return res
}

func SanitizeFollowers(users []*RelatedUser) []*types.Follower {
	res := make([]*types.Follower, 0, len(users))
	for _, u := range users {
		res = append(res, &types.Follower{
			UserProfile: *SanitizeUser(u.User),
			FollowerID:  u.User.ID,
			IsFollowing: u.Flag,
		})
	}
	return res
}

func SanitizeFollowings(users []*RelatedUser) []*types.Following {
	res := make([]*types.Following, 0, len(users))
	for _, u := range users {
		res = append(res, &types.Following{
			UserProfile: *SanitizeUser(u.User),
			FollowingID: u.User.ID,
			IsFollowed:  u.Flag,
		})
	}
	return res
}

// SanitizeLikedTweets 去掉点赞记录上的 tweetId/userId 以及推文的 userId
func SanitizeLikedTweets(likes []*CountedLike) []*types.LikedTweet {
	res := make([]*types.LikedTweet, 0, len(likes))
	for _, l := range likes {
		res = append(res, &types.LikedTweet{
			ID:        l.Like.ID,
			CreatedAt: l.Like.CreatedAt,
			UpdatedAt: l.Like.UpdatedAt,
			Tweet: &types.LikedTweetDetail{
				ID:           l.Tweet.ID,
				Description:  l.Tweet.Description,
				CreatedAt:    l.Tweet.CreatedAt,
				UpdatedAt:    l.Tweet.UpdatedAt,
				RepliesCount: l.Replies,
				LikesCount:   l.Likes,
			},
			User: SanitizeUser(l.User),
		})
	}
	return res
}
