package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户表。Password 只在写路径使用，任何序列化都不应带出
type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Account      string    `gorm:"column:account;type:varchar(50);uniqueIndex;not null" json:"account"`
	Name         string    `gorm:"column:name;type:varchar(50);not null;default:''" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Avatar       string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Cover        string    `gorm:"column:cover;type:varchar(255);not null;default:''" json:"cover"`
	Introduction string    `gorm:"column:introduction;type:varchar(160);not null;default:''" json:"introduction"`
	Role         string    `gorm:"column:role;type:varchar(10);not null;default:'user'" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
