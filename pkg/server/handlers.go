package server

import (
	"Chirp/handler"
)

type Handlers struct {
	User  *handler.User
	Tweet *handler.Tweet
}
