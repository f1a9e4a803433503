//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewTweetDAO,
	NewReplyDAO,
	NewLikeDAO,
	NewFollowshipDAO,
	NewSeeder,

	wire.Bind(new(UserStore), new(*Users)),
	wire.Bind(new(TweetStore), new(*TweetDAO)),
	wire.Bind(new(ReplyStore), new(*ReplyDAO)),
	wire.Bind(new(LikeStore), new(*LikeDAO)),
	wire.Bind(new(FollowshipStore), new(*FollowshipDAO)),
)
