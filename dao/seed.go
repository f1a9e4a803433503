package dao

import (
	"Chirp/models"
	"Chirp/pkg/errs"
	"Chirp/pkg/snowflake"
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedOptions struct {
	Users          int
	TweetsPerUser  int
	RepliesPerTwt  int
	LikesPerUser   int
	FollowsPerUser int
	Password       string
	BcryptCost     int
	Seed           int64
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Users:          5,
		TweetsPerUser:  10,
		RepliesPerTwt:  3,
		LikesPerUser:   5,
		FollowsPerUser: 2,
		Password:       "12345678",
		BcryptCost:     bcrypt.DefaultCost,
		Seed:           time.Now().UnixNano(),
	}
}

type SeedResult struct {
	Users       int
	Tweets      int
	Replies     int
	Likes       int
	Followships int
}

// Seeder 生成演示数据：普通用户、推文、每条推文若干回复、随机点赞与关注
type Seeder struct {
	Db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{Db: db}
}

func (s *Seeder) Run(ctx context.Context, opt SeedOptions) (*SeedResult, error) {
	if opt.Users <= 0 {
		return nil, fmt.Errorf("seed: users must be positive, got %d", opt.Users)
	}
	accounts := make([]string, 0, opt.Users)
	for i := 0; i < opt.Users; i++ {
		accounts = append(accounts, fmt.Sprintf("user%d", i+1))
	}
	// 账号唯一，重复灌数直接拒绝
	seeded, err := NewUsers(s.Db).IsExist(ctx, "account IN ?", accounts)
	if err != nil {
		return nil, err
	}
	if seeded {
		return nil, errs.Validationf("Seeder.Run", "seed accounts already exist")
	}
	cost := opt.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(opt.Password), cost)
	if err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(opt.Seed))
	now := time.Now()

	users := make([]models.User, 0, opt.Users)
	for i := 0; i < opt.Users; i++ {
		users = append(users, models.User{
			ID:           uint64(snowflake.GenID()),
			Account:      accounts[i],
			Name:         accounts[i],
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			Password:     string(hash),
			Introduction: fmt.Sprintf("hello, I am user%d", i+1),
			Role:         models.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	tweets := make([]models.Tweet, 0, opt.Users*opt.TweetsPerUser)
	for _, u := range users {
		for j := 0; j < opt.TweetsPerUser; j++ {
			at := now.Add(-time.Duration(rnd.Intn(30*24)) * time.Hour)
			tweets = append(tweets, models.Tweet{
				ID:          uint64(snowflake.GenID()),
				UserID:      u.ID,
				Description: fmt.Sprintf("tweet %d from %s", j+1, u.Account),
				CreatedAt:   at,
				UpdatedAt:   at,
			})
		}
	}

	replies := make([]models.Reply, 0, len(tweets)*opt.RepliesPerTwt)
	for _, t := range tweets {
		for j := 0; j < opt.RepliesPerTwt; j++ {
			at := t.CreatedAt.Add(time.Duration(rnd.Int63n(int64(24 * time.Hour))))
			replies = append(replies, models.Reply{
				ID:        uint64(snowflake.GenID()),
				UserID:    users[rnd.Intn(len(users))].ID,
				TweetID:   t.ID,
				Comment:   fmt.Sprintf("reply %d", j+1),
				CreatedAt: at,
				UpdatedAt: at,
			})
		}
	}

	likes := make([]models.Like, 0, opt.Users*opt.LikesPerUser)
	if len(tweets) > 0 {
		for _, u := range users {
			seen := make(map[uint64]struct{})
			for j := 0; j < opt.LikesPerUser && len(seen) < len(tweets); j++ {
				t := tweets[rnd.Intn(len(tweets))]
				if _, ok := seen[t.ID]; ok {
					continue
				}
				seen[t.ID] = struct{}{}
				likes = append(likes, models.Like{ID: uint64(snowflake.GenID()), UserID: u.ID, TweetID: t.ID, CreatedAt: now, UpdatedAt: now})
			}
		}
	}

	follows := make([]models.Followship, 0, opt.Users*opt.FollowsPerUser)
	for _, u := range users {
		seen := map[uint64]struct{}{u.ID: {}}
		for j := 0; j < opt.FollowsPerUser && len(seen) < len(users); j++ {
			other := users[rnd.Intn(len(users))]
			if _, ok := seen[other.ID]; ok {
				continue
			}
			seen[other.ID] = struct{}{}
			follows = append(follows, models.Followship{ID: uint64(snowflake.GenID()), FollowerID: u.ID, FollowingID: other.ID, CreatedAt: now, UpdatedAt: now})
		}
	}

	err = s.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(users, 500).Error; err != nil {
			return err
		}
		if len(tweets) > 0 {
			if err := tx.CreateInBatches(tweets, 500).Error; err != nil {
				return err
			}
		}
		if len(replies) > 0 {
			if err := tx.CreateInBatches(replies, 500).Error; err != nil {
				return err
			}
		}
		if len(likes) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(likes, 500).Error; err != nil {
				return err
			}
		}
		if len(follows) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(follows, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SeedResult{
		Users:       len(users),
		Tweets:      len(tweets),
		Replies:     len(replies),
		Likes:       len(likes),
		Followships: len(follows),
	}, nil
}
