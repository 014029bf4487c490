package reconcile

import (
	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

// AggregatedVessel is the canonical view of one MMSI merged across all
// watchlists that reference it. IMO, Name and Flag take the first non-empty
// value in snapshot order; Lists holds the distinct resolvable watchlists in
// first-encountered order.
type AggregatedVessel struct {
	MMSI  string
	IMO   string
	Name  string
	Flag  string
	Lists []*domain.Watchlist
}

// Aggregate collapses the MMSI index into one entry per distinct MMSI.
// Single-record keys produce a valid one-list entry. Records with no MMSI
// have no aggregation key and are excluded entirely. List ids that do not
// resolve through the lookup are dropped from Lists (upstream data fault);
// the caller is expected to log them via Snapshot.OrphanListIDs.
func Aggregate(byMMSI *KeyIndex, lookup ListLookup) []AggregatedVessel {
	out := make([]AggregatedVessel, 0, byMMSI.Len())
	for _, mmsi := range byMMSI.Keys() {
		records := byMMSI.Records(mmsi)
		agg := AggregatedVessel{MMSI: mmsi}
		seen := make(map[uuid.UUID]bool)
		for _, v := range records {
			if agg.IMO == "" {
				agg.IMO = v.IMO
			}
			if agg.Name == "" {
				agg.Name = v.Name
			}
			if agg.Flag == "" {
				agg.Flag = v.Flag
			}
			if seen[v.ListID] {
				continue
			}
			seen[v.ListID] = true
			if list, ok := lookup[v.ListID]; ok {
				agg.Lists = append(agg.Lists, list)
			}
		}
		out = append(out, agg)
	}
	return out
}
