package dao

import (
	"Chirp/models"
	"context"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error)
}

var _ UserStore = (*Users)(nil)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}
