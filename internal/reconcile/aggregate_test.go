package reconcile

import (
	"testing"

	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

func watchlist(name, color string) *domain.Watchlist {
	return &domain.Watchlist{ID: uuid.New(), Name: name, Color: color}
}

func TestAggregateMergesFirstNonEmptyWins(t *testing.T) {
	red := watchlist("Red", "#f00")
	blue := watchlist("Blue", "#00f")
	lookup := NewListLookup([]*domain.Watchlist{red, blue})

	first := vessel(red.ID, "123456789", "")
	first.Flag = "NO"
	second := vessel(blue.ID, "123456789", "1234567")
	second.Name = "Sea Queen"
	second.Flag = "PA"

	aggs := Aggregate(BuildIndex([]*domain.Vessel{first, second}).ByMMSI, lookup)

	if len(aggs) != 1 {
		t.Fatalf("expected 1 aggregated vessel, got %d", len(aggs))
	}
	agg := aggs[0]
	if agg.IMO != "1234567" {
		t.Fatalf("imo should take first non-empty value, got %q", agg.IMO)
	}
	if agg.Name != "Sea Queen" {
		t.Fatalf("name should take first non-empty value, got %q", agg.Name)
	}
	if agg.Flag != "NO" {
		t.Fatalf("flag must keep the earlier record's value, got %q", agg.Flag)
	}
	if len(agg.Lists) != 2 || agg.Lists[0] != red || agg.Lists[1] != blue {
		t.Fatalf("lists not in first-encountered order: %+v", agg.Lists)
	}
}

func TestAggregateSingleRecordKeyIsValid(t *testing.T) {
	red := watchlist("Red", "#f00")
	lookup := NewListLookup([]*domain.Watchlist{red})

	aggs := Aggregate(BuildIndex([]*domain.Vessel{vessel(red.ID, "123456789", "")}).ByMMSI, lookup)

	if len(aggs) != 1 || len(aggs[0].Lists) != 1 {
		t.Fatalf("a list_count=1 aggregated vessel is expected: %+v", aggs)
	}
}

func TestAggregateExcludesRecordsWithoutMMSI(t *testing.T) {
	red := watchlist("Red", "#f00")
	lookup := NewListLookup([]*domain.Watchlist{red})

	// IMO-only record: no aggregation key, no synthetic key invented.
	aggs := Aggregate(BuildIndex([]*domain.Vessel{vessel(red.ID, "", "1234567")}).ByMMSI, lookup)

	if len(aggs) != 0 {
		t.Fatalf("records without mmsi must be excluded from aggregation")
	}
}

func TestAggregateDeduplicatesListsByID(t *testing.T) {
	red := watchlist("Red", "#f00")
	lookup := NewListLookup([]*domain.Watchlist{red})

	aggs := Aggregate(BuildIndex([]*domain.Vessel{
		vessel(red.ID, "123456789", ""),
		vessel(red.ID, "123456789", ""),
	}).ByMMSI, lookup)

	if len(aggs) != 1 || len(aggs[0].Lists) != 1 {
		t.Fatalf("same list must be counted once: %+v", aggs)
	}
}

func TestAggregateDropsOrphanedListID(t *testing.T) {
	red := watchlist("Red", "#f00")
	lookup := NewListLookup([]*domain.Watchlist{red})

	known := vessel(red.ID, "123456789", "")
	orphan := vessel(uuid.New(), "123456789", "")

	snapshot := Snapshot{Vessels: []*domain.Vessel{known, orphan}}
	aggs := Aggregate(BuildIndex(snapshot.Vessels).ByMMSI, lookup)

	if len(aggs) != 1 {
		t.Fatalf("expected 1 aggregated vessel, got %d", len(aggs))
	}
	if len(aggs[0].Lists) != 1 || aggs[0].Lists[0] != red {
		t.Fatalf("orphaned list must be excluded from lists: %+v", aggs[0].Lists)
	}
	orphans := snapshot.OrphanListIDs(lookup)
	if len(orphans) != 1 || orphans[0] != orphan.ListID {
		t.Fatalf("orphan detection failed: %v", orphans)
	}
}

func TestAggregateCoverageMatchesDistinctMMSIs(t *testing.T) {
	l1, l2 := watchlist("A", ""), watchlist("B", "")
	lookup := NewListLookup([]*domain.Watchlist{l1, l2})
	snapshot := []*domain.Vessel{
		vessel(l1.ID, "111111111", ""),
		vessel(l2.ID, "111111111", ""),
		vessel(l1.ID, "222222222", ""),
		vessel(l2.ID, "", "7654321"),
	}

	aggs := Aggregate(BuildIndex(snapshot).ByMMSI, lookup)

	if len(aggs) != 2 {
		t.Fatalf("total_unique_vessels must equal distinct non-empty mmsi count, got %d", len(aggs))
	}
}
