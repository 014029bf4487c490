package reconcile

import (
	"github.com/google/uuid"

	"github.com/portside/vesselwatch-backend/internal/domain"
)

// Wire shapes for the two analytics endpoints. Field names and nesting are
// load-bearing: the front end consumes them as-is.

type VesselRef struct {
	ID        uuid.UUID `json:"id"`
	MMSI      string    `json:"mmsi"`
	IMO       string    `json:"imo"`
	ListID    uuid.UUID `json:"list_id"`
	ListName  string    `json:"list_name"`
	ListColor string    `json:"list_color"`
}

type MMSIDuplicateGroup struct {
	MMSI    string      `json:"mmsi"`
	Count   int         `json:"count"`
	Vessels []VesselRef `json:"vessels"`
}

type IMODuplicateGroup struct {
	IMO     string      `json:"imo"`
	Count   int         `json:"count"`
	Vessels []VesselRef `json:"vessels"`
}

type MMSIIMOInconsistencyGroup struct {
	MMSI    string      `json:"mmsi"`
	IMOs    []string    `json:"imos"`
	Vessels []VesselRef `json:"vessels"`
}

type ConflictGroups struct {
	MMSIDuplicates         []MMSIDuplicateGroup        `json:"mmsi_duplicates"`
	IMODuplicates          []IMODuplicateGroup         `json:"imo_duplicates"`
	MMSIIMOInconsistencies []MMSIIMOInconsistencyGroup `json:"mmsi_imo_inconsistencies"`
}

type ConflictReport struct {
	Conflicts      ConflictGroups `json:"conflicts"`
	TotalConflicts int            `json:"total_conflicts"`
}

type ListRef struct {
	ListID    uuid.UUID `json:"list_id"`
	ListName  string    `json:"list_name"`
	ListColor string    `json:"list_color"`
}

type AggregatedVesselEntry struct {
	MMSI      string    `json:"mmsi"`
	IMO       *string   `json:"imo"`
	Name      *string   `json:"name"`
	Flag      *string   `json:"flag"`
	ListCount int       `json:"list_count"`
	Lists     []ListRef `json:"lists"`
}

type AggregationReport struct {
	TotalUniqueVessels int                     `json:"total_unique_vessels"`
	Vessels            []AggregatedVesselEntry `json:"vessels"`
}

// BuildConflictReport shapes the detector output. Records whose list id does
// not resolve keep empty list metadata rather than failing the report.
func BuildConflictReport(set ConflictSet, lookup ListLookup) ConflictReport {
	report := ConflictReport{
		Conflicts: ConflictGroups{
			MMSIDuplicates:         make([]MMSIDuplicateGroup, 0, len(set.MMSIDuplicates)),
			IMODuplicates:          make([]IMODuplicateGroup, 0, len(set.IMODuplicates)),
			MMSIIMOInconsistencies: make([]MMSIIMOInconsistencyGroup, 0, len(set.Inconsistencies)),
		},
		TotalConflicts: set.TotalConflicts(),
	}
	for _, g := range set.MMSIDuplicates {
		report.Conflicts.MMSIDuplicates = append(report.Conflicts.MMSIDuplicates, MMSIDuplicateGroup{
			MMSI:    g.Key,
			Count:   g.Count,
			Vessels: vesselRefs(g.Vessels, lookup),
		})
	}
	for _, g := range set.IMODuplicates {
		report.Conflicts.IMODuplicates = append(report.Conflicts.IMODuplicates, IMODuplicateGroup{
			IMO:     g.Key,
			Count:   g.Count,
			Vessels: vesselRefs(g.Vessels, lookup),
		})
	}
	for _, g := range set.Inconsistencies {
		report.Conflicts.MMSIIMOInconsistencies = append(report.Conflicts.MMSIIMOInconsistencies, MMSIIMOInconsistencyGroup{
			MMSI:    g.MMSI,
			IMOs:    g.IMOs,
			Vessels: vesselRefs(g.Vessels, lookup),
		})
	}
	return report
}

// BuildAggregationReport shapes the aggregation output. Empty merged fields
// serialize as null, matching the front end's contract.
func BuildAggregationReport(aggregated []AggregatedVessel) AggregationReport {
	report := AggregationReport{
		TotalUniqueVessels: len(aggregated),
		Vessels:            make([]AggregatedVesselEntry, 0, len(aggregated)),
	}
	for _, agg := range aggregated {
		lists := make([]ListRef, 0, len(agg.Lists))
		for _, l := range agg.Lists {
			lists = append(lists, ListRef{ListID: l.ID, ListName: l.Name, ListColor: l.Color})
		}
		report.Vessels = append(report.Vessels, AggregatedVesselEntry{
			MMSI:      agg.MMSI,
			IMO:       nullable(agg.IMO),
			Name:      nullable(agg.Name),
			Flag:      nullable(agg.Flag),
			ListCount: len(lists),
			Lists:     lists,
		})
	}
	return report
}

func vesselRefs(records []*domain.Vessel, lookup ListLookup) []VesselRef {
	refs := make([]VesselRef, 0, len(records))
	for _, v := range records {
		ref := VesselRef{
			ID:     v.ID,
			MMSI:   v.MMSI,
			IMO:    v.IMO,
			ListID: v.ListID,
		}
		if list, ok := lookup[v.ListID]; ok {
			ref.ListName = list.Name
			ref.ListColor = list.Color
		}
		refs = append(refs, ref)
	}
	return refs
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
