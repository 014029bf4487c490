package reconcile

import (
	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

// ConflictGroup is one identity key whose records span at least two distinct
// lists. Count is the number of distinct lists involved, not the number of
// records.
type ConflictGroup struct {
	Key     string
	Vessels []*domain.Vessel
	Count   int
}

// InconsistencyGroup is one MMSI seen with two or more distinct non-empty
// IMO values. Vessels holds every record bearing the MMSI, so the UI can
// show the full context including rows with no IMO at all.
type InconsistencyGroup struct {
	MMSI    string
	IMOs    []string
	Vessels []*domain.Vessel
}

// ConflictSet is the detector output for one snapshot.
type ConflictSet struct {
	MMSIDuplicates  []ConflictGroup
	IMODuplicates   []ConflictGroup
	Inconsistencies []InconsistencyGroup
}

// TotalConflicts is the sum of the three category counts.
func (cs ConflictSet) TotalConflicts() int {
	return len(cs.MMSIDuplicates) + len(cs.IMODuplicates) + len(cs.Inconsistencies)
}

// DetectDuplicates emits one group per key whose records span two or more
// distinct lists, in the key's first-encountered order. Multiple records of
// the same key inside a single list are a data-entry concern, not a
// cross-list identity conflict, and emit nothing.
func DetectDuplicates(idx *KeyIndex) []ConflictGroup {
	var groups []ConflictGroup
	for _, key := range idx.Keys() {
		records := idx.Records(key)
		if len(records) < 2 {
			continue
		}
		distinct := distinctListCount(records)
		if distinct < 2 {
			continue
		}
		groups = append(groups, ConflictGroup{
			Key:     key,
			Vessels: records,
			Count:   distinct,
		})
	}
	return groups
}

// DetectInconsistencies emits one group per MMSI associated with two or more
// distinct non-empty IMO values. List membership is irrelevant here: a single
// list pairing one MMSI with two IMOs is just as inconsistent.
func DetectInconsistencies(byMMSI *KeyIndex) []InconsistencyGroup {
	var groups []InconsistencyGroup
	for _, mmsi := range byMMSI.Keys() {
		records := byMMSI.Records(mmsi)
		var imos []string
		seen := make(map[string]bool)
		for _, v := range records {
			if v.IMO == "" || seen[v.IMO] {
				continue
			}
			seen[v.IMO] = true
			imos = append(imos, v.IMO)
		}
		if len(imos) < 2 {
			continue
		}
		groups = append(groups, InconsistencyGroup{
			MMSI:    mmsi,
			IMOs:    imos,
			Vessels: records,
		})
	}
	return groups
}

// Detect runs all three conflict passes over the indices.
func Detect(idx Index) ConflictSet {
	return ConflictSet{
		MMSIDuplicates:  DetectDuplicates(idx.ByMMSI),
		IMODuplicates:   DetectDuplicates(idx.ByIMO),
		Inconsistencies: DetectInconsistencies(idx.ByMMSI),
	}
}

// AffectedListIDs returns the distinct list ids of every vessel referenced by
// any group in the set, in first-encountered order.
func (cs ConflictSet) AffectedListIDs() []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	collect := func(records []*domain.Vessel) {
		for _, v := range records {
			if !seen[v.ListID] {
				seen[v.ListID] = true
				ids = append(ids, v.ListID)
			}
		}
	}
	for _, g := range cs.MMSIDuplicates {
		collect(g.Vessels)
	}
	for _, g := range cs.IMODuplicates {
		collect(g.Vessels)
	}
	for _, g := range cs.Inconsistencies {
		collect(g.Vessels)
	}
	return ids
}

func distinctListCount(records []*domain.Vessel) int {
	seen := make(map[uuid.UUID]bool, len(records))
	for _, v := range records {
		seen[v.ListID] = true
	}
	return len(seen)
}
