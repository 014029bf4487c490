package reconcile

import "github.com/portside/vesselwatch-backend/internal/domain"

// KeyIndex maps an identity key to every record bearing it. Keys and the
// record slices both preserve snapshot order, which makes every downstream
// result deterministic for a stable snapshot.
type KeyIndex struct {
	keys    []string
	records map[string][]*domain.Vessel
}

func newKeyIndex() *KeyIndex {
	return &KeyIndex{records: make(map[string][]*domain.Vessel)}
}

func (ki *KeyIndex) add(key string, v *domain.Vessel) {
	if _, ok := ki.records[key]; !ok {
		ki.keys = append(ki.keys, key)
	}
	ki.records[key] = append(ki.records[key], v)
}

// Keys returns every indexed key in first-encountered order.
func (ki *KeyIndex) Keys() []string { return ki.keys }

// Records returns the records bearing key, in snapshot order.
func (ki *KeyIndex) Records(key string) []*domain.Vessel { return ki.records[key] }

func (ki *KeyIndex) Len() int { return len(ki.keys) }

// Index holds the two identity indices of one snapshot. A record with an
// empty MMSI or IMO is skipped for that index only. Identifiers are opaque
// exact-match strings; no trimming or validation happens here.
type Index struct {
	ByMMSI *KeyIndex
	ByIMO  *KeyIndex
}

func BuildIndex(vessels []*domain.Vessel) Index {
	idx := Index{ByMMSI: newKeyIndex(), ByIMO: newKeyIndex()}
	for _, v := range vessels {
		if v == nil {
			continue
		}
		if v.MMSI != "" {
			idx.ByMMSI.add(v.MMSI, v)
		}
		if v.IMO != "" {
			idx.ByIMO.add(v.IMO, v)
		}
	}
	return idx
}
