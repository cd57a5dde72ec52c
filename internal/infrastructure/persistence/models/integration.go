package models

import (
	"github.com/storeadmin/backend/internal/domain/integration"
)

// StoreCredentialModel is the persistence model for store credentials
type StoreCredentialModel struct {
	OwnedModel
	Platform       string `gorm:"size:32;not null;index"`
	StoreURL       string `gorm:"size:512;not null"`
	ConsumerKey    string `gorm:"size:255;not null"`
	ConsumerSecret string `gorm:"size:255;not null"`
}

// TableName returns the table name for StoreCredentialModel
func (StoreCredentialModel) TableName() string {
	return "store_credentials"
}

// ToDomain converts StoreCredentialModel to a domain StoreCredential
func (m *StoreCredentialModel) ToDomain() *integration.StoreCredential {
	return &integration.StoreCredential{
		OwnedEntity:    m.OwnedModel.ToDomain(),
		Platform:       integration.PlatformCode(m.Platform),
		StoreURL:       m.StoreURL,
		ConsumerKey:    m.ConsumerKey,
		ConsumerSecret: m.ConsumerSecret,
	}
}

// StoreCredentialModelFromDomain converts a domain StoreCredential to a StoreCredentialModel
func StoreCredentialModelFromDomain(c *integration.StoreCredential) *StoreCredentialModel {
	m := &StoreCredentialModel{
		Platform:       string(c.Platform),
		StoreURL:       c.StoreURL,
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
	}
	m.FromDomainOwnedEntity(c.OwnedEntity)
	return m
}
