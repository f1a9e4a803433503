package main

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/pkg/log"
	"Chirp/pkg/server"
	"Chirp/pkg/snowflake"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.App.LogLevel)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "chirp read api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			seedCommand(cfg),
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func seedCommand(cfg *config.Config) *cli.Command {
	def := dao.DefaultSeedOptions()
	return &cli.Command{
		Name:  "seed",
		Usage: "create tables and insert demo data",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Value: def.Users},
			&cli.IntFlag{Name: "tweets", Value: def.TweetsPerUser, Usage: "tweets per user"},
			&cli.IntFlag{Name: "replies", Value: def.RepliesPerTwt, Usage: "replies per tweet"},
			&cli.IntFlag{Name: "likes", Value: def.LikesPerUser, Usage: "likes per user"},
			&cli.IntFlag{Name: "follows", Value: def.FollowsPerUser, Usage: "followings per user"},
			&cli.StringFlag{Name: "password", Value: def.Password},
			&cli.Int64Flag{Name: "seed", Value: def.Seed, Usage: "random seed"},
			&cli.Int64Flag{Name: "node", Value: 1, Usage: "snowflake node id"},
			&cli.BoolFlag{Name: "migrate", Value: true, Usage: "auto migrate tables first"},
		},
		Action: func(ctx *cli.Context) error {
			if err := snowflake.SetNode(ctx.Int64("node")); err != nil {
				return err
			}
			seeder := InitSeeder(cfg)
			if ctx.Bool("migrate") {
				if err := dao.AutoMigrate(seeder.Db); err != nil {
					return err
				}
			}
			res, err := seeder.Run(ctx.Context, dao.SeedOptions{
				Users:          ctx.Int("users"),
				TweetsPerUser:  ctx.Int("tweets"),
				RepliesPerTwt:  ctx.Int("replies"),
				LikesPerUser:   ctx.Int("likes"),
				FollowsPerUser: ctx.Int("follows"),
				Password:       ctx.String("password"),
				Seed:           ctx.Int64("seed"),
			})
			if err != nil {
				return err
			}
			log.L.Info("seed finished",
				zap.Int("users", res.Users),
				zap.Int("tweets", res.Tweets),
				zap.Int("replies", res.Replies),
				zap.Int("likes", res.Likes),
				zap.Int("followships", res.Followships),
			)
			return nil
		},
	}
}
