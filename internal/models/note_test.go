package models

import "testing"

func TestFacetState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		facets  FacetState
		wantErr bool
	}{
		{"defaults", DefaultFacets(), false},
		{"month window", FacetState{Type: "all", DateRange: DateRangeMonth}, false},
		{"observed kind", FacetState{Type: "Essay", DateRange: DateRangeYear}, false},
		{"bad date range", FacetState{Type: "all", DateRange: "fortnight"}, true},
		{"empty type", FacetState{DateRange: DateRangeAll}, true},
		{"empty date range", FacetState{Type: "all"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.facets.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
