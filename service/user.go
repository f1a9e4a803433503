package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/log"
	"Chirp/types"
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	// GetUser 用户资料及粉丝数、关注数
	GetUser(ctx context.Context, userID uint64) (*types.UserDetail, error)
	// GetTweets 用户发布的推文，附带回复数与点赞数
	GetTweets(ctx context.Context, userID uint64) ([]*types.TweetItem, error)
	// GetRepliedTweets 用户发出的回复及被回复的推文
	GetRepliedTweets(ctx context.Context, userID uint64) ([]*types.RepliedTweet, error)
	GetFollowers(ctx context.Context, userID uint64) ([]*types.Follower, error)
	GetFollowings(ctx context.Context, userID uint64) ([]*types.Following, error)
	// GetLikes 用户点赞过的推文
	GetLikes(ctx context.Context, userID uint64) ([]*types.LikedTweet, error)
}

type UserService struct {
	Config   *config.Config
	Resolver *Resolver
	Relation *RelationEvaluator
	Counter  *EngagementCounter
	Tweets   dao.TweetStore
	Replies  dao.ReplyStore
	Likes    dao.LikeStore
	Follows  dao.FollowshipStore
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*types.UserDetail, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	user, err := s.Resolver.User(ctx, userID)
	if err != nil {
		return nil, err
	}

	var followers, followings int64
	excludeSelf := s.Config.Relation.ExcludeSelf()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		followers, err = s.Follows.CountFollowers(egCtx, userID, excludeSelf)
		return err
	})
	eg.Go(func() error {
		var err error
		followings, err = s.Follows.CountFollowings(egCtx, userID, excludeSelf)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return SanitizeUserDetail(user.User, followers, followings), nil
}

func (s *UserService) GetTweets(ctx context.Context, userID uint64) ([]*types.TweetItem, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	user, err := s.Resolver.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	tweets, err := s.Tweets.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	counted, err := s.Counter.AttachCounts(ctx, tweets)
	if err != nil {
		return nil, err
	}
	return SanitizeTweets(counted, map[uint64]*models.User{user.ID: user.User}), nil
}

func (s *UserService) GetRepliedTweets(ctx context.Context, userID uint64) ([]*types.RepliedTweet, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	user, err := s.Resolver.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	replies, err := s.Replies.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tweetIDs := make([]uint64, 0, len(replies))
	for _, r := range replies {
		tweetIDs = append(tweetIDs, r.TweetID)
	}
	tweets, err := s.Resolver.TweetsByID(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint64, 0, len(tweets))
	for _, t := range tweets {
		authorIDs = append(authorIDs, t.UserID)
	}
	authors, err := s.Resolver.UsersByID(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	return SanitizeRepliedTweets(replies, tweets, authors), nil
}

func (s *UserService) GetFollowers(ctx context.Context, userID uint64) ([]*types.Follower, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	target, err := s.Resolver.User(ctx, userID, IncludeFollowings)
	if err != nil {
		return nil, err
	}
	followers, err := s.Relation.FollowersOf(ctx, target)
	if err != nil {
		return nil, err
	}
	log.L.Debug("followers evaluated", zap.Uint64("user_id", userID), zap.Int("count", len(followers)))
	return SanitizeFollowers(followers), nil
}

func (s *UserService) GetFollowings(ctx context.Context, userID uint64) ([]*types.Following, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	target, err := s.Resolver.User(ctx, userID, IncludeFollowers)
	if err != nil {
		return nil, err
	}
	followings, err := s.Relation.FollowingsOf(ctx, target)
	if err != nil {
		return nil, err
	}
	log.L.Debug("followings evaluated", zap.Uint64("user_id", userID), zap.Int("count", len(followings)))
	return SanitizeFollowings(followings), nil
}

func (s *UserService) GetLikes(ctx context.Context, userID uint64) ([]*types.LikedTweet, error) {
	ctx, cancel := withDeadline(ctx, s.Config)
	defer cancel()

	user, err := s.Resolver.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.Likes.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tweetIDs := make([]uint64, 0, len(likes))
	for _, l := range likes {
		tweetIDs = append(tweetIDs, l.TweetID)
	}
	tweets, err := s.Resolver.TweetsByID(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}

	records := make([]*LikeRecord, 0, len(likes))
	for _, l := range likes {
		records = append(records, &LikeRecord{Like: l, Tweet: tweets[l.TweetID], User: user.User})
	}
	counted, err := s.Counter.AttachCountsToLikedTweets(ctx, records)
	if err != nil {
		return nil, err
	}
	return SanitizeLikedTweets(counted), nil
}
