package reconcile

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

func buildReports(vessels []*domain.Vessel, lists []*domain.Watchlist) (ConflictReport, AggregationReport) {
	lookup := NewListLookup(lists)
	idx := BuildIndex(vessels)
	conflicts := BuildConflictReport(Detect(idx), lookup)
	aggregated := BuildAggregationReport(Aggregate(idx.ByMMSI, lookup))
	return conflicts, aggregated
}

func TestEmptyStoreReportShapes(t *testing.T) {
	conflicts, aggregated := buildReports(nil, nil)

	raw, err := json.Marshal(conflicts)
	if err != nil {
		t.Fatalf("marshal conflicts: %v", err)
	}
	want := `{"conflicts":{"mmsi_duplicates":[],"imo_duplicates":[],"mmsi_imo_inconsistencies":[]},"total_conflicts":0}`
	if string(raw) != want {
		t.Fatalf("conflict report mismatch:\n got %s\nwant %s", raw, want)
	}

	raw, err = json.Marshal(aggregated)
	if err != nil {
		t.Fatalf("marshal aggregated: %v", err)
	}
	want = `{"total_unique_vessels":0,"vessels":[]}`
	if string(raw) != want {
		t.Fatalf("aggregation report mismatch:\n got %s\nwant %s", raw, want)
	}
}

func TestConflictReportWireFields(t *testing.T) {
	red := watchlist("Red", "#f00")
	blue := watchlist("Blue", "#00f")
	a := vessel(red.ID, "123456789", "1234567")
	b := vessel(blue.ID, "123456789", "7654321")

	conflicts, _ := buildReports([]*domain.Vessel{a, b}, []*domain.Watchlist{red, blue})

	if conflicts.TotalConflicts != 2 {
		t.Fatalf("expected duplicate + inconsistency = 2, got %d", conflicts.TotalConflicts)
	}
	raw, err := json.Marshal(conflicts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	inner, ok := decoded["conflicts"].(map[string]any)
	if !ok {
		t.Fatalf("missing conflicts object")
	}
	for _, key := range []string{"mmsi_duplicates", "imo_duplicates", "mmsi_imo_inconsistencies"} {
		if _, ok := inner[key]; !ok {
			t.Fatalf("missing %q", key)
		}
	}
	dupes := inner["mmsi_duplicates"].([]any)
	group := dupes[0].(map[string]any)
	refs := group["vessels"].([]any)
	ref := refs[0].(map[string]any)
	for _, key := range []string{"id", "mmsi", "imo", "list_id", "list_name", "list_color"} {
		if _, ok := ref[key]; !ok {
			t.Fatalf("vessel ref missing %q", key)
		}
	}
	if ref["list_name"] != "Red" || ref["list_color"] != "#f00" {
		t.Fatalf("list metadata not resolved: %+v", ref)
	}
}

func TestAggregationReportNullsEmptyFields(t *testing.T) {
	red := watchlist("Red", "#f00")
	v := vessel(red.ID, "123456789", "")

	_, aggregated := buildReports([]*domain.Vessel{v}, []*domain.Watchlist{red})

	raw, err := json.Marshal(aggregated)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"imo":null`)) {
		t.Fatalf("empty imo must serialize as null: %s", raw)
	}
	if !bytes.Contains(raw, []byte(`"list_count":1`)) {
		t.Fatalf("expected list_count 1: %s", raw)
	}
}

func TestOrphanedListIDKeepsRecordWithEmptyMetadata(t *testing.T) {
	red := watchlist("Red", "#f00")
	a := vessel(red.ID, "123456789", "")
	b := vessel(uuid.New(), "123456789", "")

	conflicts, _ := buildReports([]*domain.Vessel{a, b}, []*domain.Watchlist{red})

	if len(conflicts.Conflicts.MMSIDuplicates) != 1 {
		t.Fatalf("orphaned record must still participate in conflicts")
	}
	refs := conflicts.Conflicts.MMSIDuplicates[0].Vessels
	if len(refs) != 2 {
		t.Fatalf("expected both records in the group")
	}
	if refs[1].ListName != "" || refs[1].ListColor != "" {
		t.Fatalf("orphan must carry empty list metadata: %+v", refs[1])
	}
}

func TestPipelineIsIdempotent(t *testing.T) {
	red := watchlist("Red", "#f00")
	blue := watchlist("Blue", "#00f")
	vessels := []*domain.Vessel{
		vessel(red.ID, "123456789", "1234567"),
		vessel(blue.ID, "123456789", "7654321"),
		vessel(red.ID, "222222222", ""),
		vessel(blue.ID, "", "5555555"),
		vessel(red.ID, "", "5555555"),
	}
	lists := []*domain.Watchlist{red, blue}

	c1, a1 := buildReports(vessels, lists)
	c2, a2 := buildReports(vessels, lists)

	raw1, _ := json.Marshal(c1)
	raw2, _ := json.Marshal(c2)
	if !bytes.Equal(raw1, raw2) {
		t.Fatalf("conflict report not byte-identical across runs")
	}
	raw1, _ = json.Marshal(a1)
	raw2, _ = json.Marshal(a2)
	if !bytes.Equal(raw1, raw2) {
		t.Fatalf("aggregation report not byte-identical across runs")
	}
}
