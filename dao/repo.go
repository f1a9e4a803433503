package dao

import (
	"Chirp/pkg/errs"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repo 通用单表仓储，错误在这里统一分类为 NotFound / Store
type Repo[T any] struct {
	Db   *gorm.DB
	name string
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	var zero T
	return Repo[T]{Db: db, name: fmt.Sprintf("%T", zero)}
}

func (r *Repo[T]) op(method string) string {
	return "dao." + r.name + "." + method
}

// FindByID 主键查询，不存在时返回 NotFound 类错误
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf(r.op("FindByID"), "%s %d not found", r.name, id)
	}
	if err != nil {
		return nil, errs.Store(r.op("FindByID"), err)
	}
	return &item, nil
}

// FindByIDs 批量主键查询，缺失的 ID 直接忽略
func (r *Repo[T]) FindByIDs(ctx context.Context, ids []uint64) ([]*T, error) {
	items := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, errs.Store(r.op("FindByIDs"), err)
	}
	return items, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFoundf(r.op("FindByWhere"), "%s not found", r.name)
	}
	if err != nil {
		return nil, errs.Store(r.op("FindByWhere"), err)
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, errs.Store(r.op("IsExist"), err)
	}
	return count > 0, nil
}

type tweetCount struct {
	TweetID uint64 `gorm:"column:tweet_id"`
	Total   int64  `gorm:"column:total"`
}

// countGroupedByTweet 单次 GROUP BY 查询统计多条推文的关联行数
func (r *Repo[T]) countGroupedByTweet(ctx context.Context, method string, tweetIDs []uint64) (map[uint64]int64, error) {
	res := make(map[uint64]int64, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return res, nil
	}
	var rows []tweetCount
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Select("tweet_id, COUNT(*) AS total").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.Store(r.op(method), err)
	}
	for _, row := range rows {
		res[row.TweetID] = row.Total
	}
	return res, nil
}

func (r *Repo[T]) countByTweet(ctx context.Context, method string, tweetID uint64) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where("tweet_id = ?", tweetID).Count(&count).Error
	if err != nil {
		return 0, errs.Store(r.op(method), err)
	}
	return count, nil
}
