package reconcile

import (
	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

// Snapshot is one consistent read of every vessel row and every watchlist.
// Vessel order is the store's stable iteration order (created_at, id); that
// order drives key ordering and "first non-empty wins" everywhere below.
type Snapshot struct {
	Vessels []*domain.Vessel
	Lists   []*domain.Watchlist
}

// ListLookup resolves a list id to its watchlist metadata.
type ListLookup map[uuid.UUID]*domain.Watchlist

func NewListLookup(lists []*domain.Watchlist) ListLookup {
	lookup := make(ListLookup, len(lists))
	for _, l := range lists {
		if l == nil {
			continue
		}
		lookup[l.ID] = l
	}
	return lookup
}

// OrphanListIDs returns the distinct list ids referenced by vessels but
// missing from the lookup, in first-encountered order. Orphans are a
// data-integrity fault upstream; the report excludes their metadata but
// keeps the records themselves.
func (s Snapshot) OrphanListIDs(lookup ListLookup) []uuid.UUID {
	var orphans []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, v := range s.Vessels {
		if v == nil || seen[v.ListID] {
			continue
		}
		if _, ok := lookup[v.ListID]; !ok {
			seen[v.ListID] = true
			orphans = append(orphans, v.ListID)
		}
	}
	return orphans
}
