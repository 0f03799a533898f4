package site

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Site struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name       string `gorm:"type:varchar(150);not null"`
	ClientName string `gorm:"type:varchar(150)"`
	Location   string `gorm:"type:varchar(200)"`
	AreaSqft   float64 `gorm:"type:double precision;not null;default:0"`

	ManagerName     string `gorm:"type:varchar(100)"`
	ManagerPhone    string `gorm:"type:varchar(20)"`
	SupervisorName  string `gorm:"type:varchar(100)"`
	SupervisorPhone string `gorm:"type:varchar(20)"`

	ContractValue   float64    `gorm:"type:double precision;not null;default:0"`
	ContractEndDate *time.Time `gorm:"type:date"`

	// Comma separated service tags, e.g. "housekeeping,security"
	Services string `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'active'"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Site) TableName() string {
	return "sites"
}
