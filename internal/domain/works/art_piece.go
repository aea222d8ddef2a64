package works

import (
	"time"

	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtPiece struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string      `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Title  string `gorm:"not null" json:"title"`
	Artist string `gorm:"not null" json:"artist"`
	Medium string `gorm:"not null" json:"medium"`

	Year Years `gorm:"embedded;embeddedPrefix:year_" json:"year"`
	Size Size  `gorm:"embedded;embeddedPrefix:size_" json:"size"`

	Images  media.Images `gorm:"serializer:json" json:"images"`
	Owners  []Party      `gorm:"serializer:json" json:"owners"`
	Holders []Party      `gorm:"serializer:json" json:"holders"`

	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`

	Archival bool `gorm:"not null;index" json:"archival"`
	ForSale  bool `gorm:"column:for_sale;not null" json:"for_sale"`

	Price Price `gorm:"embedded;embeddedPrefix:price_" json:"price"`

	Description string `json:"description,omitempty"`
	Catalogue   string `json:"catalogue,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *ArtPiece) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Years struct {
	Started  *int `json:"started,omitempty"`
	Finished *int `json:"finished,omitempty"`
}

type Size struct {
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
	Z    *float64 `json:"z,omitempty"`
	Unit string   `json:"unit"`
}

type Price struct {
	Amount   *float64 `json:"amount,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Party is an owner or holder of a piece.
type Party struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Status      string `json:"status"`
}

func (p Party) IsZero() bool {
	return p.Name == "" && p.ContactInfo == "" && p.Status == ""
}
