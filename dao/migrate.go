package dao

import (
	"Chirp/models"

	"gorm.io/gorm"
)

// AutoMigrate 建表，仅供本地工具与测试使用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Reply{},
		&models.Like{},
		&models.Followship{},
	)
}
