package dao

import (
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"

	"gorm.io/gorm"
)

type LikeStore interface {
	FindByUserID(ctx context.Context, userID uint64) ([]*models.Like, error)
	CountByTweetID(ctx context.Context, tweetID uint64) (int64, error)
	CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error)
}

var _ LikeStore = (*LikeDAO)(nil)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// FindByUserID 用户的点赞记录(按点赞时间倒序)
func (d *LikeDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Like, error) {
	likes := make([]*models.Like, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error
	if err != nil {
		return nil, errs.Store("dao.Like.FindByUserID", err)
	}
	return likes, nil
}

func (d *LikeDAO) CountByTweetID(ctx context.Context, tweetID uint64) (int64, error) {
	return d.countByTweet(ctx, "CountByTweetID", tweetID)
}

func (d *LikeDAO) CountByTweetIDs(ctx context.Context, tweetIDs []uint64) (map[uint64]int64, error) {
	return d.countGroupedByTweet(ctx, "CountByTweetIDs", tweetIDs)
}
