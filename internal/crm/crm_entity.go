package crm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name          string `gorm:"type:varchar(150);not null"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(150)"`
	Phone         string `gorm:"type:varchar(20)"`
	Address       string `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Client) TableName() string {
	return "crm_clients"
}

type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_leads_company_status"`

	Name          string  `gorm:"type:varchar(150);not null"`
	ContactPerson string  `gorm:"type:varchar(100)"`
	Email         string  `gorm:"type:varchar(150)"`
	Phone         string  `gorm:"type:varchar(20)"`
	Source        string  `gorm:"type:varchar(50)"`
	EstimatedValue float64 `gorm:"type:double precision;not null;default:0"`
	Notes         string  `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'new';index:idx_leads_company_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Lead) TableName() string {
	return "crm_leads"
}
