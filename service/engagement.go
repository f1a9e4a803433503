package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/log"
	"context"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Engagement struct {
	Replies int64
	Likes   int64
}

type CountedTweet struct {
	*models.Tweet
	Engagement
}

// LikeRecord 点赞记录及其关联的推文与点赞者。Tweet 为 nil 表示推文已被删除
type LikeRecord struct {
	*models.Like
	Tweet *models.Tweet
	User  *models.User
}

type CountedLike struct {
	*LikeRecord
	Engagement
}

// EngagementCounter 统计推文的回复数与点赞数
type EngagementCounter struct {
	Config  *config.Config
	Replies dao.ReplyStore
	Likes   dao.LikeStore
}

// Count 返回每个推文ID的计数，没有任何记录的推文计为 0
func (c *EngagementCounter) Count(ctx context.Context, tweetIDs []uint64) (map[uint64]Engagement, error) {
	ids := uniqueIDs(tweetIDs)
	if len(ids) == 0 {
		return map[uint64]Engagement{}, nil
	}

	var (
		res map[uint64]Engagement
		err error
	)
	switch c.Config.Aggregate.CountStrategy {
	case config.CountFanout:
		res, err = c.countFanout(ctx, ids)
	default:
		res, err = c.countGrouped(ctx, ids)
	}
	if err != nil {
		log.L.Warn("count engagement failed",
			zap.String("strategy", c.Config.Aggregate.CountStrategy),
			zap.Int("tweets", len(ids)),
			zap.Error(err),
		)
		return nil, err
	}
	return res, nil
}

// countGrouped 两条 GROUP BY 查询并发执行
func (c *EngagementCounter) countGrouped(ctx context.Context, ids []uint64) (map[uint64]Engagement, error) {
	var replies, likes map[uint64]int64

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		replies, err = c.Replies.CountByTweetIDs(egCtx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		likes, err = c.Likes.CountByTweetIDs(egCtx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := make(map[uint64]Engagement, len(ids))
	for _, id := range ids {
		res[id] = Engagement{Replies: replies[id], Likes: likes[id]}
	}
	return res, nil
}

// countFanout 逐条推文计数，推文之间的并发度由 FanoutLimit 限制，单条推文的两个计数并发
func (c *EngagementCounter) countFanout(ctx context.Context, ids []uint64) (map[uint64]Engagement, error) {
	var mu sync.Mutex
	res := make(map[uint64]Engagement, len(ids))

	p := pool.New().
		WithMaxGoroutines(c.Config.Aggregate.FanoutLimit).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for _, id := range ids {
		p.Go(func(ctx context.Context) error {
			e, err := c.countOne(ctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			res[id] = e
			mu.Unlock()
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *EngagementCounter) countOne(ctx context.Context, id uint64) (Engagement, error) {
	var e Engagement
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		e.Replies, err = c.Replies.CountByTweetID(egCtx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		e.Likes, err = c.Likes.CountByTweetID(egCtx, id)
		return err
	})
	return e, eg.Wait()
}

// AttachCounts 给推文附加计数，保持输入顺序
func (c *EngagementCounter) AttachCounts(ctx context.Context, tweets []*models.Tweet) ([]*CountedTweet, error) {
	ids := make([]uint64, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}
	counts, err := c.Count(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make([]*CountedTweet, 0, len(tweets))
	for _, t := range tweets {
		res = append(res, &CountedTweet{Tweet: t, Engagement: counts[t.ID]})
	}
	return res, nil
}

// AttachCountsToLikedTweets 给点赞记录中的推文附加计数，推文已删除的记录直接丢弃
func (c *EngagementCounter) AttachCountsToLikedTweets(ctx context.Context, likes []*LikeRecord) ([]*CountedLike, error) {
	alive := make([]*LikeRecord, 0, len(likes))
	ids := make([]uint64, 0, len(likes))
	for _, l := range likes {
		if l.Tweet == nil {
			continue
		}
		alive = append(alive, l)
		ids = append(ids, l.Tweet.ID)
	}
	counts, err := c.Count(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make([]*CountedLike, 0, len(alive))
	for _, l := range alive {
		res = append(res, &CountedLike{LikeRecord: l, Engagement: counts[l.Tweet.ID]})
	}
	return res, nil
}
