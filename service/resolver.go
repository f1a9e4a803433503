package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"context"

	"golang.org/x/sync/errgroup"
)

type Include int

const (
	IncludeFollowings Include = iota + 1 // 目标用户关注的人
	IncludeFollowers                     // 目标用户的粉丝
)

// ResolvedUser 原始用户行及按需加载的关注边集合，未请求的集合为 nil
type ResolvedUser struct {
	*models.User
	Followings map[uint64]struct{}
	Followers  map[uint64]struct{}
}

func (u *ResolvedUser) IsFollowing(id uint64) bool {
	_, ok := u.Followings[id]
	return ok
}

func (u *ResolvedUser) IsFollowedBy(id uint64) bool {
	_, ok := u.Followers[id]
	return ok
}

// Resolver 按主键加载实体，不做任何脱敏
type Resolver struct {
	Config  *config.Config
	Users   dao.UserStore
	Tweets  dao.TweetStore
	Follows dao.FollowshipStore
}

func (r *Resolver) User(ctx context.Context, id uint64, includes ...Include) (*ResolvedUser, error) {
	user, err := r.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &ResolvedUser{User: user}
	excludeSelf := r.Config.Relation.ExcludeSelf()

	var withFollowings, withFollowers bool
	for _, inc := range includes {
		switch inc {
		case IncludeFollowings:
			withFollowings = true
		case IncludeFollowers:
			withFollowers = true
		}
	}

	// 每个集合最多加载一次，重复的 include 不会并发写同一字段
	eg, egCtx := errgroup.WithContext(ctx)
	if withFollowings {
		eg.Go(func() error {
			ids, err := r.Follows.FollowingIDs(egCtx, id, excludeSelf)
			if err != nil {
				return err
			}
			res.Followings = idSet(ids)
			return nil
		})
	}
	if withFollowers {
		eg.Go(func() error {
			ids, err := r.Follows.FollowerIDs(egCtx, id, excludeSelf)
			if err != nil {
				return err
			}
			res.Followers = idSet(ids)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) Tweet(ctx context.Context, id uint64) (*models.Tweet, error) {
	return r.Tweets.FindByID(ctx, id)
}

// UsersByID 批量加载用户，已删除的用户不在结果中
func (r *Resolver) UsersByID(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	users, err := r.Users.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	res := make(map[uint64]*models.User, len(users))
	for _, u := range users {
		res[u.ID] = u
	}
	return res, nil
}

// TweetsByID 批量加载推文，已删除的推文不在结果中
func (r *Resolver) TweetsByID(ctx context.Context, ids []uint64) (map[uint64]*models.Tweet, error) {
	tweets, err := r.Tweets.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	res := make(map[uint64]*models.Tweet, len(tweets))
	for _, t := range tweets {
		res[t.ID] = t
	}
	return res, nil
}

func idSet(ids []uint64) map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
