package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/data/repos/testutil"
)

// recordingCache stands in for the redis report cache so the tests can
// observe when invalidation fires relative to the database writes.
type recordingCache struct {
	invalidations int
	onInvalidate  func(ctx context.Context)
}

func (c *recordingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, raw []byte) error { return nil }

func (c *recordingCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	if c.onInvalidate != nil {
		c.onInvalidate(ctx)
	}
	return nil
}

func (c *recordingCache) Close() error { return nil }

func TestVesselServiceCSVRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	watchlistRepo := repos.NewWatchlistRepo(db, log)
	vesselRepo := repos.NewVesselRepo(db, log)

	source := testutil.SeedWatchlist(t, ctx, db, "Source", "#0a0")
	target := testutil.SeedWatchlist(t, ctx, db, "Target", "#a00")
	t.Cleanup(func() {
		_ = vesselRepo.DeleteByListIDs(ctx, nil, []uuid.UUID{source.ID, target.ID})
		_ = watchlistRepo.Delete(ctx, nil, []uuid.UUID{source.ID, target.ID})
	})

	cache := &recordingCache{}
	svc := NewVesselService(db, log, watchlistRepo, vesselRepo, cache)

	if _, err := svc.AddVessels(ctx, nil, source.ID, []VesselInput{
		{MMSI: "111111111", IMO: "7000001", Name: "Alpha", Flag: "NL"},
		{MMSI: "222222222", Name: "Beta"},
	}); err != nil {
		t.Fatalf("AddVessels: %v", err)
	}

	var out bytes.Buffer
	if err := svc.ExportCSV(ctx, source.ID, &out); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.HasPrefix(out.String(), "mmsi,imo,name,callsign,flag,lastposition,note\n") {
		t.Fatalf("export missing header: %q", out.String())
	}

	// An import must not invalidate until its rows are committed; a report
	// computed off an invalidation that fires mid-transaction would re-cache
	// the pre-import snapshot with nothing to ever age it out.
	cache.onInvalidate = func(ctx context.Context) {
		rows, err := vesselRepo.GetByListIDs(ctx, nil, []uuid.UUID{target.ID})
		if err != nil {
			t.Errorf("rows at invalidation time: %v", err)
			return
		}
		if len(rows) != 2 {
			t.Errorf("invalidation fired before commit: %d rows visible, want 2", len(rows))
		}
	}
	before := cache.invalidations
	count, err := svc.ImportCSV(ctx, target.ID, &out)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported %d rows, want 2", count)
	}
	if got := cache.invalidations - before; got != 1 {
		t.Fatalf("import invalidated %d times, want 1", got)
	}
	cache.onInvalidate = nil

	imported, err := vesselRepo.GetByListIDs(ctx, nil, []uuid.UUID{target.ID})
	if err != nil {
		t.Fatalf("load imported: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("got %d imported vessels, want 2", len(imported))
	}
	if imported[0].MMSI != "111111111" || imported[0].Name != "Alpha" || imported[0].Flag != "NL" {
		t.Fatalf("first row did not round-trip: %+v", imported[0])
	}
	if imported[1].MMSI != "222222222" || imported[1].IMO != "" {
		t.Fatalf("sparse row did not round-trip: %+v", imported[1])
	}

	// Short rows pad out to empty fields and blank lines are skipped.
	short := "mmsi,imo,name,callsign,flag,lastposition,note\n333333333,7000003\n\n444444444\n"
	count, err = svc.ImportCSV(ctx, target.ID, strings.NewReader(short))
	if err != nil {
		t.Fatalf("ImportCSV short rows: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported %d short rows, want 2", count)
	}
	rows, err := vesselRepo.GetByListIDs(ctx, nil, []uuid.UUID{target.ID})
	if err != nil {
		t.Fatalf("load after short import: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("target holds %d vessels, want 4", len(rows))
	}
	last := rows[len(rows)-1]
	if last.MMSI != "444444444" || last.IMO != "" || last.Name != "" {
		t.Fatalf("short row not padded: %+v", last)
	}
}
