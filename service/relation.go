package service

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"
)

// RelatedUser 关系列表中的一个用户及其回关标记
type RelatedUser struct {
	User *models.User
	Flag bool
}

// RelationEvaluator 回关标记都相对目标用户计算，与当前登录用户无关
type RelationEvaluator struct {
	Config  *config.Config
	Follows dao.FollowshipStore
}

// FollowersOf 目标用户的粉丝，Flag 表示目标用户是否回关了该粉丝
func (e *RelationEvaluator) FollowersOf(ctx context.Context, target *ResolvedUser) ([]*RelatedUser, error) {
	if target == nil || target.Followings == nil {
		return nil, errs.Validationf("service.RelationEvaluator.FollowersOf", "target followings not resolved")
	}
	users, err := e.Follows.Followers(ctx, target.ID, e.Config.Relation.ExcludeSelf())
	if err != nil {
		return nil, err
	}
	res := make([]*RelatedUser, 0, len(users))
	for _, u := range users {
		res = append(res, &RelatedUser{User: u, Flag: target.IsFollowing(u.ID)})
	}
	return res, nil
}

// FollowingsOf 目标用户关注的人，Flag 表示对方是否也关注了目标用户
func (e *RelationEvaluator) FollowingsOf(ctx context.Context, target *ResolvedUser) ([]*RelatedUser, error) {
	if target == nil || target.Followers == nil {
		return nil, errs.Validationf("service.RelationEvaluator.FollowingsOf", "target followers not resolved")
	}
	users, err := e.Follows.Followings(ctx, target.ID, e.Config.Relation.ExcludeSelf())
	if err != nil {
		return nil, err
	}
	res := make([]*RelatedUser, 0, len(users))
	for _, u := range users {
		res = append(res, &RelatedUser{User: u, Flag: target.IsFollowedBy(u.ID)})
	}
	return res, nil
}
