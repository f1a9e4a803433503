package dao

import (
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"

	"gorm.io/gorm"
)

// FollowshipStore 关注边查询。excludeSelf 为 true 时忽略自己关注自己的边
type FollowshipStore interface {
	FollowerIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error)
	FollowingIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error)
	Followers(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error)
	Followings(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error)
	CountFollowers(ctx context.Context, userID uint64, excludeSelf bool) (int64, error)
	CountFollowings(ctx context.Context, userID uint64, excludeSelf bool) (int64, error)
}

var _ FollowshipStore = (*FollowshipDAO)(nil)

type FollowshipDAO struct {
	Repo[models.Followship]
}

func NewFollowshipDAO(db *gorm.DB) *FollowshipDAO {
	return &FollowshipDAO{
		Repo: NewRepo[models.Followship](db),
	}
}

func withoutSelf(excludeSelf bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if excludeSelf {
			return db.Where("followships.follower_id <> followships.following_id")
		}
		return db
	}
}

// FollowerIDs 关注了 userID 的用户ID
func (d *FollowshipDAO) FollowerIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.Followship{}).
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.following_id = ?", userID).
		Pluck("followships.follower_id", &ids).Error
	if err != nil {
		return nil, errs.Store("dao.Followship.FollowerIDs", err)
	}
	return ids, nil
}

// FollowingIDs userID 关注的用户ID
func (d *FollowshipDAO) FollowingIDs(ctx context.Context, userID uint64, excludeSelf bool) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.Followship{}).
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.follower_id = ?", userID).
		Pluck("followships.following_id", &ids).Error
	if err != nil {
		return nil, errs.Store("dao.Followship.FollowingIDs", err)
	}
	return ids, nil
}

// Followers 粉丝列表，联接用户表，按关注时间倒序
func (d *FollowshipDAO) Followers(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error) {
	users := make([]*models.User, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*").
		Joins("JOIN followships ON followships.follower_id = users.id").
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.following_id = ?", userID).
		Order("followships.created_at DESC, followships.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, errs.Store("dao.Followship.Followers", err)
	}
	return users, nil
}

// Followings 关注列表，联接用户表，按关注时间倒序
func (d *FollowshipDAO) Followings(ctx context.Context, userID uint64, excludeSelf bool) ([]*models.User, error) {
	users := make([]*models.User, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*").
		Joins("JOIN followships ON followships.following_id = users.id").
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.follower_id = ?", userID).
		Order("followships.created_at DESC, followships.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, errs.Store("dao.Followship.Followings", err)
	}
	return users, nil
}

// CountFollowers 获取粉丝数
func (d *FollowshipDAO) CountFollowers(ctx context.Context, userID uint64, excludeSelf bool) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Followship{}).
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errs.Store("dao.Followship.CountFollowers", err)
	}
	return count, nil
}

// CountFollowings 获取关注数
func (d *FollowshipDAO) CountFollowings(ctx context.Context, userID uint64, excludeSelf bool) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Followship{}).
		Scopes(withoutSelf(excludeSelf)).
		Where("followships.follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errs.Store("dao.Followship.CountFollowings", err)
	}
	return count, nil
}
