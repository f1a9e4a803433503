// Package dbtest 提供基于内存 SQLite 的测试库与数据构造工具
package dbtest

import (
	"Chirp/dao"
	"Chirp/models"
	"Chirp/pkg/snowflake"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New 每个测试独立的内存库。只保留一条连接，否则并发查询会各自拿到一个空库
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dao.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Fixture 按插入顺序递增时间戳，保证倒序排列可预期
type Fixture struct {
	t     testing.TB
	DB    *gorm.DB
	clock time.Time
	seq   int
}

func NewFixture(t testing.TB) *Fixture {
	t.Helper()
	return &Fixture{t: t, DB: New(t), clock: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (f *Fixture) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *Fixture) create(v any) {
	f.t.Helper()
	if err := f.DB.Create(v).Error; err != nil {
		f.t.Fatalf("create %T: %v", v, err)
	}
}

func (f *Fixture) User(account string) *models.User {
	f.t.Helper()
	f.seq++
	at := f.tick()
	u := &models.User{
		ID:        uint64(snowflake.GenID()),
		Account:   account,
		Name:      account,
		Email:     fmt.Sprintf("%s@example.com", account),
		Password:  fmt.Sprintf("$2a$10$secret-hash-%d", f.seq),
		Avatar:    fmt.Sprintf("https://cdn.example.com/%s.png", account),
		Role:      models.RoleUser,
		CreatedAt: at,
		UpdatedAt: at,
	}
	f.create(u)
	return u
}

func (f *Fixture) Tweet(owner *models.User, description string) *models.Tweet {
	f.t.Helper()
	at := f.tick()
	tw := &models.Tweet{ID: uint64(snowflake.GenID()), UserID: owner.ID, Description: description, CreatedAt: at, UpdatedAt: at}
	f.create(tw)
	return tw
}

func (f *Fixture) Reply(author *models.User, tw *models.Tweet, comment string) *models.Reply {
	f.t.Helper()
	at := f.tick()
	r := &models.Reply{ID: uint64(snowflake.GenID()), UserID: author.ID, TweetID: tw.ID, Comment: comment, CreatedAt: at, UpdatedAt: at}
	f.create(r)
	return r
}

func (f *Fixture) Like(u *models.User, tw *models.Tweet) *models.Like {
	f.t.Helper()
	at := f.tick()
	l := &models.Like{ID: uint64(snowflake.GenID()), UserID: u.ID, TweetID: tw.ID, CreatedAt: at, UpdatedAt: at}
	f.create(l)
	return l
}

// Follow follower 关注 following
func (f *Fixture) Follow(follower, following *models.User) *models.Followship {
	f.t.Helper()
	at := f.tick()
	fs := &models.Followship{ID: uint64(snowflake.GenID()), FollowerID: follower.ID, FollowingID: following.ID, CreatedAt: at, UpdatedAt: at}
	f.create(fs)
	return fs
}

// Delete 模拟写路径在读取过程中删除实体
func (f *Fixture) Delete(v any) {
	f.t.Helper()
	if err := f.DB.Delete(v).Error; err != nil {
		f.t.Fatalf("delete %T: %v", v, err)
	}
}
