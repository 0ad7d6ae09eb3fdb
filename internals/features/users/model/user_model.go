package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserId       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserUsername string    `gorm:"uniqueIndex;not null;column:user_username" json:"user_username"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserNama     string    `gorm:"not null;column:user_nama" json:"user_nama"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
