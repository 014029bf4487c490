package reconcile

import (
	"testing"

	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

func vessel(listID uuid.UUID, mmsi, imo string) *domain.Vessel {
	return &domain.Vessel{ID: uuid.New(), ListID: listID, MMSI: mmsi, IMO: imo}
}

func TestBuildIndexSkipsEmptyKeysPerIndex(t *testing.T) {
	list := uuid.New()
	noIMO := vessel(list, "123456789", "")
	noMMSI := vessel(list, "", "7654321")
	neither := vessel(list, "", "")

	idx := BuildIndex([]*domain.Vessel{noIMO, noMMSI, neither})

	if got := idx.ByMMSI.Len(); got != 1 {
		t.Fatalf("ByMMSI keys: expected 1, got %d", got)
	}
	if got := idx.ByIMO.Len(); got != 1 {
		t.Fatalf("ByIMO keys: expected 1, got %d", got)
	}
	if records := idx.ByMMSI.Records("123456789"); len(records) != 1 || records[0] != noIMO {
		t.Fatalf("ByMMSI records: unexpected %+v", records)
	}
	if records := idx.ByIMO.Records("7654321"); len(records) != 1 || records[0] != noMMSI {
		t.Fatalf("ByIMO records: unexpected %+v", records)
	}
}

func TestBuildIndexPreservesSnapshotOrder(t *testing.T) {
	l1, l2 := uuid.New(), uuid.New()
	a := vessel(l1, "222222222", "")
	b := vessel(l2, "111111111", "")
	c := vessel(l1, "111111111", "")

	idx := BuildIndex([]*domain.Vessel{a, b, c})

	keys := idx.ByMMSI.Keys()
	if len(keys) != 2 || keys[0] != "222222222" || keys[1] != "111111111" {
		t.Fatalf("keys not in first-encountered order: %v", keys)
	}
	records := idx.ByMMSI.Records("111111111")
	if len(records) != 2 || records[0] != b || records[1] != c {
		t.Fatalf("records not in snapshot order")
	}
}

func TestBuildIndexKeepsMalformedKeysAsIs(t *testing.T) {
	// The write path validates identifier shape; the indexer must not.
	list := uuid.New()
	weird := vessel(list, "  not-numeric ", "x")
	idx := BuildIndex([]*domain.Vessel{weird})
	if records := idx.ByMMSI.Records("  not-numeric "); len(records) != 1 {
		t.Fatalf("malformed mmsi not indexed as-is")
	}
	if records := idx.ByIMO.Records("x"); len(records) != 1 {
		t.Fatalf("malformed imo not indexed as-is")
	}
}
