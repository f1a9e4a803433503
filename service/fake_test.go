package service_test

import (
	"Chirp/dao"
	"Chirp/models"
	"context"
	"sync/atomic"
)

// recorder 统计下游存储被调用的次数
type recorder struct {
	calls atomic.Int64
}

func (r *recorder) hit() { r.calls.Add(1) }

type fakeUsers struct {
	recorder
	user *models.User
	err  error
}

func (f *fakeUsers) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	f.hit()
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUsers) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	f.hit()
	if f.err != nil {
		return nil, f.err
	}
	return []*models.User{f.user}, nil
}

type fakeTweets struct {
	recorder
	tweets []*models.Tweet
	err    error
	block  bool
}

func (f *fakeTweets) wait(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeTweets) FindByID(ctx context.Context, id uint64) (*models.Tweet, error) {
	f.hit()
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.tweets[0], nil
}

func (f *fakeTweets) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Tweet, error) {
	f.hit()
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.tweets, nil
}

func (f *fakeTweets) FindAll(ctx context.Context) ([]*models.Tweet, error) {
	f.hit()
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.tweets, nil
}

func (f *fakeTweets) FindByUserID(ctx context.Context, userID uint64) ([]*models.Tweet, error) {
	f.hit()
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.tweets, nil
}

type fakeReplies struct {
	recorder
	err error
}

func (f *fakeReplies) FindByUserID(ctx context.Context, userID uint64) ([]*models.Reply, error) {
	f.hit()
	return []*models.Reply{}, f.err
}

func (f *fakeReplies) FindByTweetID(ctx context.Context, tweetID uint64) ([]*models.Reply, error) {
	f.hit()
	return []*models.Reply{}, f.err
}

func (f *fakeReplies) CountByTweetID(ctx context.Context, tweetID uint64) (int64, error) {
	f.hit()
	return 0, f.err
}

func (f *fakeReplies) CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error) {
	f.hit()
	return map[uint64]int64{}, f.err
}

type fakeLikes struct {
	recorder
	err error
}

func (f *fakeLikes) FindByUserID(ctx context.Context, userID uint64) ([]*models.Like, error) {
	f.hit()
	return []*models.Like{}, f.err
}

func (f *fakeLikes) CountByTweetID(ctx context.Context, tweetID uint64) (int64, error) {
	f.hit()
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func (f *fakeLikes) CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error) {
	f.hit()
	if f.err != nil {
		return nil, f.err
	}
	res := make(map[uint64]int64, len(tweetIDs))
	for _, id := range tweetIDs {
		res[id] = 1
	}
	return res, nil
}

type fakeFollows struct {
	recorder
	err error
}

func (f *fakeFollows) FollowerIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error) {
	f.hit()
	return []uint64{}, nil
}

func (f *fakeFollows) FollowingIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error) {
	f.hit()
	return []uint64{}, nil
}

func (f *fakeFollows) Followers(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error) {
	f.hit()
	if f.err != nil {
		return nil, f.err
	}
	return []*models.User{}, nil
}

func (f *fakeFollows) Followings(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error) {
	f.hit()
	if f.err != nil {
		return nil, f.err
	}
	return []*models.User{}, nil
}

func (f *fakeFollows) CountFollowers(ctx context.Context, userID uint64, excludeSelf bool) (int64, error) {
	f.hit()
	return 0, f.err
}

func (f *fakeFollows) CountFollowings(ctx context.Context, userID uint64, excludeSelf bool) (int64, error) {
	f.hit()
	return 0, f.err
}

var (
	_ dao.UserStore       = (*fakeUsers)(nil)
	_ dao.TweetStore      = (*fakeTweets)(nil)
	_ dao.ReplyStore      = (*fakeReplies)(nil)
	_ dao.LikeStore       = (*fakeLikes)(nil)
	_ dao.FollowshipStore = (*fakeFollows)(nil)
)
