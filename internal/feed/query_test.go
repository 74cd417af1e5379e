package feed

import (
	"reflect"
	"testing"
	"time"

	"github.com/starford/laguz/internal/models"
)

var queryNow = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

func noteAgedDays(title, kind string, days int) models.Note {
	return models.Note{Title: title, Kind: kind, Timestamp: queryNow.AddDate(0, 0, -days)}
}

func TestApplyFacets_Type(t *testing.T) {
	notes := []models.Note{
		noteAgedDays("a", "Essay", 1),
		noteAgedDays("b", "Photo", 2),
		noteAgedDays("c", "Essay", 3),
	}
	got := ApplyFacets(notes, models.FacetState{Type: "Essay", DateRange: models.DateRangeAll}, queryNow)
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyFacets_DateWindows(t *testing.T) {
	notes := []models.Note{
		noteAgedDays("fresh", "Note", 10),
		noteAgedDays("older", "Note", 60),
		noteAgedDays("old", "Note", 200),
		noteAgedDays("ancient", "Note", 500),
		{Title: "undated", Kind: "Note"},
	}
	tests := []struct {
		dateRange string
		want      []string
	}{
		{models.DateRangeMonth, []string{"fresh"}},
		{models.DateRangeQuarter, []string{"fresh", "older"}},
		{models.DateRangeYear, []string{"fresh", "older", "old"}},
		{models.DateRangeAll, []string{"fresh", "older", "old", "ancient", "undated"}},
	}
	for _, tt := range tests {
		t.Run(tt.dateRange, func(t *testing.T) {
			got := ApplyFacets(notes, models.FacetState{Type: models.TypeAll, DateRange: tt.dateRange}, queryNow)
			titles := make([]string, len(got))
			for i, n := range got {
				titles[i] = n.Title
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("range %s = %v, want %v", tt.dateRange, titles, tt.want)
			}
		})
	}
}

func TestTypeOptions_DistinctSorted(t *testing.T) {
	notes := []models.Note{
		{Kind: "Photo"}, {Kind: "Essay"}, {Kind: "Photo"}, {Kind: "Note"},
	}
	got := TypeOptions(notes)
	want := []string{"Essay", "Note", "Photo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TypeOptions = %v, want %v", got, want)
	}
}
