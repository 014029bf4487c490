package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vessel is one watchlist entry. MMSI and IMO are stored as opaque strings;
// the write path validates shape, the reconciliation engine matches them by
// exact equality only. Either identifier may be empty.
type Vessel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ListID       uuid.UUID `gorm:"type:uuid;not null;index;column:list_id" json:"list_id"`
	MMSI         string    `gorm:"index;column:mmsi" json:"mmsi"`
	IMO          string    `gorm:"index;column:imo" json:"imo"`
	Name         string    `gorm:"column:name" json:"name"`
	Callsign     string    `gorm:"column:callsign" json:"callsign"`
	Flag         string    `gorm:"column:flag" json:"flag"`
	LastPosition string    `gorm:"column:lastposition" json:"lastposition"`
	Note         string    `gorm:"column:note" json:"note"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Vessel) TableName() string { return "vessel" }
