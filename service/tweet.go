package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/errs"
	"Chirp/types"
	"context"

	"golang.org/x/sync/errgroup"
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	// ListTweets 全部推文，附带作者与计数
	ListTweets(ctx context.Context) ([]*types.TweetItem, error)
	// GetTweet 推文详情及其回复
	GetTweet(ctx context.Context, tweetID uint64) (*types.TweetDetail, error)
}

type TweetService struct {
	Config   *config.Config
	Resolver *Resolver
	Counter  *EngagementCounter
	Tweets   dao.TweetStore
	Replies  dao.ReplyStore
}

func (s *TweetService) ListTweets(ctx context.Context) ([]*types.TweetItem, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	tweets, err := s.Tweets.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var (
		counted []*CountedTweet
		authors map[uint64]*models.User
	)
	authorIDs := make([]uint64, 0, len(tweets))
	for _, t := range tweets {
		authorIDs = append(authorIDs, t.UserID)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		counted, err = s.Counter.AttachCounts(egCtx, tweets)
		return err
	})
	eg.Go(func() error {
		var err error
		authors, err = s.Resolver.UsersByID(egCtx, authorIDs)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return SanitizeTweets(counted, authors), nil
}

func (s *TweetService) GetTweet(ctx context.Context, tweetID uint64) (*types.TweetDetail, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	tweet, err := s.Resolver.Tweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	var (
		counted []*CountedTweet
		replies []*models.Reply
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		counted, err = s.Counter.AttachCounts(egCtx, []*models.Tweet{tweet})
		return err
	})
	eg.Go(func() error {
		var err error
		replies, err = s.Replies.FindByTweetID(egCtx, tweetID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(replies)+1)
	userIDs = append(userIDs, tweet.UserID)
	for _, r := range replies {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.Resolver.UsersByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	author, ok := users[tweet.UserID]
	if !ok {
		return nil, errs.NotFoundf("service.TweetService.GetTweet", "author of tweet %d not found", tweetID)
	}
	return SanitizeTweetDetail(counted[0], author, SanitizeReplies(replies, users)), nil
}
