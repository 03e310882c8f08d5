package recommender

import (
	"testing"

	"github.com/juhi0109/movie-recommender/internal/models"
)

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		raw      string
		wantYear int
		wantOK   bool
	}{
		{"1999", 1999, true},
		{"2008-2013", 2008, true}, // series span, leading year counts
		{"2020–", 2020, true},
		{"199", 0, false},
		{"19a9", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"abcd", 0, false},
	}

	for _, tt := range tests {
		c := Normalize(models.RawDetail{Year: tt.raw})
		if c.HasYear != tt.wantOK || c.Year != tt.wantYear {
			t.Errorf("Normalize(Year=%q) = (%d, %v), want (%d, %v)",
				tt.raw, c.Year, c.HasYear, tt.wantYear, tt.wantOK)
		}
	}
}

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		raw        string
		wantRating float64
		wantOK     bool
	}{
		{"7.5", 7.5, true},
		{"10", 10, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"great", 0, false},
	}

	for _, tt := range tests {
		c := Normalize(models.RawDetail{Rating: tt.raw})
		if c.HasRating != tt.wantOK || c.Rating != tt.wantRating {
			t.Errorf("Normalize(Rating=%q) = (%v, %v), want (%v, %v)",
				tt.raw, c.Rating, c.HasRating, tt.wantRating, tt.wantOK)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	if c := Normalize(models.RawDetail{Title: "The Matrix"}); c.TitleLower != "the matrix" {
		t.Errorf("TitleLower = %q, want %q", c.TitleLower, "the matrix")
	}
	if c := Normalize(models.RawDetail{}); c.TitleLower != "" {
		t.Errorf("TitleLower for absent title = %q, want empty", c.TitleLower)
	}
}

func TestNormalizeKeepsDetail(t *testing.T) {
	raw := models.RawDetail{ImdbID: "tt0133093", Title: "The Matrix", Country: "USA"}
	c := Normalize(raw)
	if c.Detail != raw {
		t.Errorf("Detail = %+v, want %+v", c.Detail, raw)
	}
}
