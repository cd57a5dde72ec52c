package models

import (
	"time"

	"github.com/storeadmin/backend/internal/domain/identity"
)

// UserModel is the persistence model for users
type UserModel struct {
	BaseModel
	Name         string     `gorm:"size:255;not null"`
	Email        string     `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string     `gorm:"size:255;not null"`
	Role         string     `gorm:"size:50;not null;default:'user'"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         identity.UserRole(m.Role),
		LastLoginAt:  m.LastLoginAt,
	}
}

// UserModelFromDomain converts a domain User to a UserModel
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		LastLoginAt:  u.LastLoginAt,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}
