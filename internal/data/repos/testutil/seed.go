package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

func SeedWatchlist(tb testing.TB, ctx context.Context, tx *gorm.DB, name, color string) *domain.Watchlist {
	tb.Helper()
	l := &domain.Watchlist{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed watchlist: %v", err)
	}
	return l
}

func SeedVessel(tb testing.TB, ctx context.Context, tx *gorm.DB, listID uuid.UUID, mmsi, imo string) *domain.Vessel {
	tb.Helper()
	v := &domain.Vessel{
		ID:     uuid.New(),
		ListID: listID,
		MMSI:   mmsi,
		IMO:    imo,
		Name:   "vessel",
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed vessel: %v", err)
	}
	return v
}

func SeedDocument(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Document {
	tb.Helper()
	d := &domain.Document{
		ID:      uuid.New(),
		Name:    name,
		Payload: datatypes.JSON([]byte(`{}`)),
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed document: %v", err)
	}
	return d
}
