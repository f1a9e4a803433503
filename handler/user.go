package handler

import (
	"Chirp/config"
	"Chirp/middleware"
	"Chirp/pkg/context"
	"Chirp/pkg/response"
	"Chirp/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.Use(authorize)
	g.GET("/:id", context.Wrap(u.GetUser))
	g.GET("/:id/tweets", context.Wrap(u.GetTweets))
	g.GET("/:id/replied_tweets", context.Wrap(u.GetRepliedTweets))
	g.GET("/:id/likes", context.Wrap(u.GetLikes))
	g.GET("/:id/followers", context.Wrap(u.GetFollowers))
	g.GET("/:id/followings", context.Wrap(u.GetFollowings))
}

func (u *User) GetUser(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	detail, err := u.UserService.GetUser(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (u *User) GetTweets(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	tweets, err := u.UserService.GetTweets(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tweets)
	return nil
}

func (u *User) GetRepliedTweets(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	replies, err := u.UserService.GetRepliedTweets(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, replies)
	return nil
}

func (u *User) GetLikes(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	likes, err := u.UserService.GetLikes(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (u *User) GetFollowers(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	followers, err := u.UserService.GetFollowers(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, followers)
	return nil
}

func (u *User) GetFollowings(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	followings, err := u.UserService.GetFollowings(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, followings)
	return nil
}
