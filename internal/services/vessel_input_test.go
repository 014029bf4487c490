package services

import "testing"

func TestVesselInputNormalize(t *testing.T) {
	in := VesselInput{MMSI: " 123456789 ", IMO: "1234567", Name: " Sea Queen "}
	if err := in.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if in.MMSI != "123456789" || in.Name != "Sea Queen" {
		t.Fatalf("normalize did not trim: %+v", in)
	}
}

func TestVesselInputNormalizeAllowsEmptyIdentifiers(t *testing.T) {
	in := VesselInput{Name: "No identifiers yet"}
	if err := in.normalize(); err != nil {
		t.Fatalf("a record may carry neither identifier: %v", err)
	}
}

func TestVesselInputNormalizeRejectsBadShapes(t *testing.T) {
	cases := []VesselInput{
		{MMSI: "12345678"},  // 8 digits
		{MMSI: "12345678a"}, // non-numeric
		{IMO: "123456"},     // 6 digits
		{IMO: "12345678"},   // 8 digits
		{IMO: "1234s67"},    // non-numeric
	}
	for _, in := range cases {
		if err := in.normalize(); err == nil {
			t.Fatalf("expected validation error for %+v", in)
		}
	}
}

func TestCSVRowHelpers(t *testing.T) {
	if !looksLikeHeader([]string{"MMSI", "imo"}) {
		t.Fatalf("header row not recognized")
	}
	if looksLikeHeader([]string{"123456789"}) {
		t.Fatalf("data row mistaken for header")
	}
	if !isBlank([]string{"", "  ", ""}) {
		t.Fatalf("blank row not recognized")
	}
	if field([]string{"a"}, 3) != "" {
		t.Fatalf("short rows must read as empty trailing columns")
	}
}
