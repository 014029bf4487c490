package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/data/repos"
	"github.com/portside/vesselwatch-backend/internal/data/repos/testutil"
	"github.com/portside/vesselwatch-backend/internal/reconcile"
)

// End-to-end pipeline over a real database. Seeds are committed (the
// snapshot fetch opens its own transaction) and removed on cleanup, so all
// assertions are scoped to this test's own rows.
func TestReconcileServiceEndToEnd(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	watchlistRepo := repos.NewWatchlistRepo(db, log)
	vesselRepo := repos.NewVesselRepo(db, log)

	red := testutil.SeedWatchlist(t, ctx, db, "Red", "#f00")
	blue := testutil.SeedWatchlist(t, ctx, db, "Blue", "#00f")
	mmsi := "987654321"
	a := testutil.SeedVessel(t, ctx, db, red.ID, mmsi, "7000001")
	b := testutil.SeedVessel(t, ctx, db, blue.ID, mmsi, "7000002")
	t.Cleanup(func() {
		_ = vesselRepo.Delete(ctx, nil, []uuid.UUID{a.ID, b.ID})
		_ = watchlistRepo.Delete(ctx, nil, []uuid.UUID{red.ID, blue.ID})
	})

	svc := NewReconcileService(db, log, watchlistRepo, vesselRepo, nil)

	raw, err := svc.ConflictReport(ctx)
	if err != nil {
		t.Fatalf("ConflictReport: %v", err)
	}
	var conflicts reconcile.ConflictReport
	if err := json.Unmarshal(raw, &conflicts); err != nil {
		t.Fatalf("unmarshal conflict report: %v", err)
	}

	var dupe *reconcile.MMSIDuplicateGroup
	for i := range conflicts.Conflicts.MMSIDuplicates {
		if conflicts.Conflicts.MMSIDuplicates[i].MMSI == mmsi {
			dupe = &conflicts.Conflicts.MMSIDuplicates[i]
		}
	}
	if dupe == nil {
		t.Fatalf("seeded duplicate not reported")
	}
	if dupe.Count != 2 {
		t.Fatalf("expected 2 distinct lists, got %d", dupe.Count)
	}
	names := []string{dupe.Vessels[0].ListName, dupe.Vessels[1].ListName}
	if !strings.Contains(strings.Join(names, ","), "Red") {
		t.Fatalf("list metadata not resolved: %v", names)
	}

	var incons *reconcile.MMSIIMOInconsistencyGroup
	for i := range conflicts.Conflicts.MMSIIMOInconsistencies {
		if conflicts.Conflicts.MMSIIMOInconsistencies[i].MMSI == mmsi {
			incons = &conflicts.Conflicts.MMSIIMOInconsistencies[i]
		}
	}
	if incons == nil || len(incons.IMOs) != 2 {
		t.Fatalf("seeded imo inconsistency not reported: %+v", incons)
	}

	rawAgg, err := svc.AggregationReport(ctx)
	if err != nil {
		t.Fatalf("AggregationReport: %v", err)
	}
	var aggregated reconcile.AggregationReport
	if err := json.Unmarshal(rawAgg, &aggregated); err != nil {
		t.Fatalf("unmarshal aggregation report: %v", err)
	}
	found := false
	for _, entry := range aggregated.Vessels {
		if entry.MMSI != mmsi {
			continue
		}
		found = true
		if entry.ListCount != 2 {
			t.Fatalf("expected list_count 2, got %d", entry.ListCount)
		}
		if entry.IMO == nil || *entry.IMO != "7000001" {
			t.Fatalf("imo should take the first non-empty value, got %v", entry.IMO)
		}
	}
	if !found {
		t.Fatalf("seeded mmsi missing from aggregation")
	}

	// Unchanged snapshot: byte-identical reports.
	raw2, err := svc.ConflictReport(ctx)
	if err != nil {
		t.Fatalf("ConflictReport again: %v", err)
	}
	if !bytes.Equal(raw, raw2) {
		t.Fatalf("conflict report not idempotent")
	}
}
