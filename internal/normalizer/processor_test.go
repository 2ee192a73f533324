package normalizer

import (
	"encoding/json"
	"errors"
	"testing"

	"moviedata/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor(testOptions())
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor(testOptions())

	records := []models.RawRecord{
		{"id": json.Number("11"), "title": "Star Wars", "release_date": "1977-05-25"},
		{"title": "Untitled Sequel", "release_date": "2030-01-01"},
		{"id": "x-3", "title": "Broken", "genres": "[{'name': 'Drama'", "vote_average": "n/a"},
		{},
	}

	movies, err := p.Process(records)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if len(movies) != len(records) {
		t.Fatalf("len(movies) = %d, want %d", len(movies), len(records))
	}

	wantTitles := []string{"Star Wars", "Untitled Sequel", "Broken", ""}
	for i, m := range movies {
		if m.Title != wantTitles[i] {
			t.Errorf("movies[%d].Title = %q, want %q", i, m.Title, wantTitles[i])
		}
	}

	if movies[1].ID != 1 || movies[3].ID != 3 {
		t.Errorf("positional IDs = %v, %v; want 1, 3", movies[1].ID, movies[3].ID)
	}

	if movies[1].Released {
		t.Error("future release marked as released")
	}

	if len(movies[2].Genre) != 0 || movies[2].Rating != 0 {
		t.Errorf("malformed record = %+v, want defaults", movies[2])
	}

	stats := p.Stats()
	if stats.Records != 4 || stats.MissingID != 2 {
		t.Errorf("Stats = %+v, want 4 records and 2 missing IDs", stats)
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	p := NewProcessor(testOptions())

	movies, err := p.Process(nil)
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if movies == nil || len(movies) != 0 {
		t.Errorf("Process(nil) = %v, want empty non-nil slice", movies)
	}
}

func TestProcessor_Process_ValidationError(t *testing.T) {
	p := NewProcessor(Options{PosterBaseURL: DefaultPosterBaseURL})

	result, err := p.Process([]models.RawRecord{{"title": "Heat"}})
	if !errors.Is(err, ErrMissingReferenceDate) {
		t.Errorf("Process error = %v, want %v", err, ErrMissingReferenceDate)
	}

	if result != nil {
		t.Error("Process expected nil result for invalid options")
	}
}
