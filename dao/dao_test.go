package dao_test

import (
	"Chirp/dao"
	"Chirp/internal/dbtest"
	"Chirp/models"
	"Chirp/pkg/errs"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoFindByID(t *testing.T) {
	fx := dbtest.NewFixture(t)
	users := dao.NewUsers(fx.DB)
	ctx := context.Background()

	alice := fx.User("alice")
	got, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Account)

	_, err = users.FindByID(ctx, alice.ID+1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	byAccount, err := users.FindByWhere(ctx, "account = ?", "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byAccount.ID)

	ok, err := users.IsExist(ctx, "account = ?", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = users.IsExist(ctx, "account = ?", "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepoStoreError(t *testing.T) {
	fx := dbtest.NewFixture(t)
	tweets := dao.NewTweetDAO(fx.DB)

	sqlDB, err := fx.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = tweets.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, errs.KindStore, errs.KindOf(err))

	_, err = tweets.FindAll(context.Background())
	assert.Equal(t, errs.KindStore, errs.KindOf(err))
}

func TestFindByIDsSkipsMissing(t *testing.T) {
	fx := dbtest.NewFixture(t)
	users := dao.NewUsers(fx.DB)

	a, b := fx.User("a"), fx.User("b")
	got, err := users.FindByIDs(context.Background(), []uint64{a.ID, b.ID, b.ID + 100})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := users.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCountByTweetIDs(t *testing.T) {
	fx := dbtest.NewFixture(t)
	replies := dao.NewReplyDAO(fx.DB)
	likes := dao.NewLikeDAO(fx.DB)
	ctx := context.Background()

	author, u1, u2 := fx.User("author"), fx.User("u1"), fx.User("u2")
	t1 := fx.Tweet(author, "first")
	t2 := fx.Tweet(author, "second")
	t3 := fx.Tweet(author, "quiet")

	fx.Reply(u1, t1, "a")
	fx.Reply(u2, t1, "b")
	fx.Reply(u1, t2, "c")
	fx.Like(u1, t1)
	fx.Like(u2, t1)
	fx.Like(author, t1)

	replyCounts, err := replies.CountByTweetIDs(ctx, []uint64{t1.ID, t2.ID, t3.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{t1.ID: 2, t2.ID: 1}, replyCounts)

	likeCounts, err := likes.CountByTweetIDs(ctx, []uint64{t1.ID, t2.ID, t3.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{t1.ID: 3}, likeCounts)

	n, err := replies.CountByTweetID(ctx, t1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = likes.CountByTweetID(ctx, t3.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	none, err := likes.CountByTweetIDs(ctx, []uint64{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTweetAndReplyOrdering(t *testing.T) {
	fx := dbtest.NewFixture(t)
	tweets := dao.NewTweetDAO(fx.DB)
	replies := dao.NewReplyDAO(fx.DB)
	ctx := context.Background()

	alice, bob := fx.User("alice"), fx.User("bob")
	older := fx.Tweet(alice, "older")
	newer := fx.Tweet(alice, "newer")
	fx.Tweet(bob, "bob's")
	r1 := fx.Reply(bob, older, "first")
	r2 := fx.Reply(alice, older, "second")

	mine, err := tweets.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, []uint64{newer.ID, older.ID}, []uint64{mine[0].ID, mine[1].ID})

	all, err := tweets.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	thread, err := replies.FindByTweetID(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, r1.ID, thread[0].ID)
	assert.Equal(t, r2.ID, thread[1].ID)

	byBob, err := replies.FindByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, byBob, 1)
	assert.Equal(t, r1.ID, byBob[0].ID)
}

func TestFollowshipQueries(t *testing.T) {
	fx := dbtest.NewFixture(t)
	follows := dao.NewFollowshipDAO(fx.DB)
	ctx := context.Background()

	target, b, c, d := fx.User("target"), fx.User("b"), fx.User("c"), fx.User("d")
	fx.Follow(target, b)
	fx.Follow(target, c)
	fx.Follow(b, target)
	fx.Follow(d, target)
	fx.Follow(target, target)

	followers, err := follows.Followers(ctx, target.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []uint64{target.ID, d.ID, b.ID}, ids(followers))
	assert.Equal(t, "$2a$10$secret-hash-1", followers[0].Password, "store returns raw rows")

	followers, err = follows.Followers(ctx, target.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{d.ID, b.ID}, ids(followers))

	followings, err := follows.Followings(ctx, target.ID, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{c.ID, b.ID}, ids(followings))

	followingIDs, err := follows.FollowingIDs(ctx, target.ID, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{b.ID, c.ID, target.ID}, followingIDs)

	followerIDs, err := follows.FollowerIDs(ctx, target.ID, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{b.ID, d.ID}, followerIDs)

	n, err := follows.CountFollowers(ctx, target.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	n, err = follows.CountFollowings(ctx, target.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	lonely := fx.User("lonely")
	empty, err := follows.FollowerIDs(ctx, lonely.ID, false)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSeeder(t *testing.T) {
	fx := dbtest.NewFixture(t)
	opt := dao.DefaultSeedOptions()
	opt.BcryptCost = 4
	opt.Seed = 42

	res, err := dao.NewSeeder(fx.DB).Run(context.Background(), opt)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Users)
	assert.Equal(t, 50, res.Tweets)
	assert.Equal(t, 150, res.Replies)

	var count int64
	require.NoError(t, fx.DB.Model(&models.Followship{}).Where("follower_id = following_id").Count(&count).Error)
	assert.Zero(t, count, "seeder never produces self-follow edges")

	require.NoError(t, fx.DB.Model(&models.Like{}).Count(&count).Error)
	assert.EqualValues(t, res.Likes, count)

	_, err = dao.NewSeeder(fx.DB).Run(context.Background(), dao.SeedOptions{})
	assert.Error(t, err)

	// 再次灌数被拒绝，数据保持不变
	_, err = dao.NewSeeder(fx.DB).Run(context.Background(), opt)
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	require.NoError(t, fx.DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, res.Users, count)
}

func ids(users []*models.User) []uint64 {
	out := make([]uint64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
