package domain

import (
	"time"

	"github.com/google/uuid"
)

// Watchlist is a named, colored set of vessel entries maintained
// independently of other watchlists.
type Watchlist struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name  string    `gorm:"not null;column:name" json:"name"`
	Color string    `gorm:"column:color" json:"color"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Watchlist) TableName() string { return "watchlist" }
