package dao

import (
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"

	"gorm.io/gorm"
)

type ReplyStore interface {
	FindByUserID(ctx context.Context, userID uint64) ([]*models.Reply, error)
	FindByTweetID(ctx context.Context, tweetID uint64) ([]*models.Reply, error)
	CountByTweetID(ctx context.Context, tweetID uint64) (int64, error)
	CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error)
}

var _ ReplyStore = (*ReplyDAO)(nil)

type ReplyDAO struct {
	Repo[models.Reply]
}

func NewReplyDAO(db *gorm.DB) *ReplyDAO {
	return &ReplyDAO{Repo: NewRepo[models.Reply](db)}
}

// FindByUserID 用户发出的回复(按时间倒序)
func (d *ReplyDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Reply, error) {
	replies := make([]*models.Reply, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&replies).Error
	if err != nil {
		return nil, errs.Store("dao.Reply.FindByUserID", err)
	}
	return replies, nil
}

// FindByTweetID 推文下的回复(按时间正序)
func (d *ReplyDAO) FindByTweetID(ctx context.Context, tweetID uint64) ([]*models.Reply, error) {
	replies := make([]*models.Reply, 0)
	err := d.Db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	if err != nil {
		return nil, errs.Store("dao.Reply.FindByTweetID", err)
	}
	return replies, nil
}

func (d *ReplyDAO) CountByTweetID(ctx context.Context, tweetID uint64) (int64, error) {
	return d.countByTweet(ctx, "CountByTweetID", tweetID)
}

// CountByTweetIDs 批量统计回复数，没有回复的推文不出现在结果中
func (d *ReplyDAO) CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error) {
	return d.countGroupedByTweet(ctx, "CountByTweetIDs", tweetIDs)
}
