package handler

import (
	"Chirp/config"
	"Chirp/middleware"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"

	"github.com/gin-gonic/gin"
)

type Tweet struct {
	Config       *config.Config
	TweetService service.ITweetService
}

func (t *Tweet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(t.Config.Jwt.Secret))
	g := r.Group("/v1/tweets")
	g.Use(authorize)
	g.GET("", context.Wrap(t.ListTweets))
	g.GET("/:tweet_id", context.Wrap(t.GetTweet))
}

func (t *Tweet) ListTweets(c *gin.Context) error {
	tweets, err := t.TweetService.ListTweets(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tweets)
	return nil
}

func (t *Tweet) GetTweet(c *gin.Context) error {
	id, err := paramID(c, "tweet_id")
	if err != nil {
		return err
	}
	detail, err := t.TweetService.GetTweet(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}
