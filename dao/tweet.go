package dao

import (
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"

	"gorm.io/gorm"
)

type TweetStore interface {
	FindByID(ctx context.Context, id uint64) (*models.Tweet, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*models.Tweet, error)
	FindAll(ctx context.Context) ([]*models.Tweet, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*models.Tweet, error)
}

var _ TweetStore = (*TweetDAO)(nil)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// FindAll 全部推文，按发布时间倒序
func (d *TweetDAO) FindAll(ctx context.Context) ([]*models.Tweet, error) {
	tweets := make([]*models.Tweet, 0)
	err := d.Db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, errs.Store("dao.Tweet.FindAll", err)
	}
	return tweets, nil
}

// FindByUserID 根据用户ID查询推文列表
func (d *TweetDAO) FindByUserID(ctx context.Context, userID uint64) ([]*models.Tweet, error) {
	tweets := make([]*models.Tweet, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, errs.Store("dao.Tweet.FindByUserID", err)
	}
	return tweets, nil
}
