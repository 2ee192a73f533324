// Package models defines data structures for the converter and normalizer.
package models

// Raw field names as found in the third-party movie database export.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldGenres      = "genres"
	FieldReleaseDate = "release_date"
	FieldPosterPath  = "poster_path"
	FieldVoteAverage = "vote_average"
	FieldRuntime     = "runtime"
	FieldOverview    = "overview"
	FieldLanguage    = "original_language"
)

// RawRecord is a loosely typed movie entry from an export.
// Any field may be missing, null or of an unexpected type.
type RawRecord map[string]any

// Lookup returns the value stored under key, treating null like a missing key.
func (r RawRecord) Lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Movie is the cleaned, application-ready movie entry.
type Movie struct {
	ID          any      `json:"id"`
	Title       string   `json:"title"`
	Year        *int     `json:"year"`
	Genre       []string `json:"genre"`
	Director    string   `json:"director"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	Duration    int      `json:"duration"`
	Released    bool     `json:"released"`
	Language    string   `json:"language"`
}
