package normalizer

import (
	"encoding/json"
	"time"

	"moviedata/internal/models"
	"moviedata/pkg/utils"
)

// releaseDateLayout is the only accepted release date format.
const releaseDateLayout = "2006-01-02"

// Transformer maps one raw record onto the clean movie schema.
// Every field rule falls back to a default instead of failing.
type Transformer struct {
	opts  Options
	text  *utils.StringHelper
	stats Stats
}

// Stats counts the fields that fell back to their default value.
type Stats struct {
	Records         int
	MissingID       int
	EmptyGenres     int
	UnparsedRelease int
	DefaultRating   int
	DefaultDuration int
}

// NewTransformer creates a new transformer instance.
func NewTransformer(opts Options) *Transformer {
	return &Transformer{
		opts: opts,
		text: utils.NewStringHelper(),
	}
}

// Stats returns the defaulting counters collected so far.
func (t *Transformer) Stats() Stats {
	return t.stats
}

// Transform converts the raw record at position index into a clean movie.
func (t *Transformer) Transform(index int, raw models.RawRecord) models.Movie {
	t.stats.Records++

	year, released := t.parseRelease(raw)

	movie := models.Movie{
		ID:          t.parseID(index, raw),
		Title:       textField(raw, models.FieldTitle),
		Year:        year,
		Genre:       t.parseGenres(raw),
		Director:    "",
		Rating:      t.parseRating(raw),
		Description: textField(raw, models.FieldOverview),
		Poster:      t.posterURL(raw),
		Duration:    t.parseDuration(raw),
		Released:    released,
		Language:    textField(raw, models.FieldLanguage),
	}

	if t.opts.StripMarkup {
		movie.Description = t.text.StripMarkup(movie.Description)
	}

	return movie
}

func (t *Transformer) parseID(index int, raw models.RawRecord) any {
	v, ok := raw.Lookup(models.FieldID)
	if ok {
		switch id := v.(type) {
		case json.Number, string, float64, int:
			return id
		}
	}

	t.stats.MissingID++

	return index
}

func (t *Transformer) parseGenres(raw models.RawRecord) []string {
	v, _ := raw.Lookup(models.FieldGenres)

	genres := ParseNamedList(v)
	if len(genres) == 0 {
		t.stats.EmptyGenres++
	}

	return genres
}

// parseRelease returns the release year and whether the date is on or before
// the reference day.
func (t *Transformer) parseRelease(raw models.RawRecord) (*int, bool) {
	v, _ := raw.Lookup(models.FieldReleaseDate)

	s, ok := v.(string)
	if !ok || s == "" {
		t.stats.UnparsedRelease++
		return nil, false
	}

	date, err := time.ParseInLocation(releaseDateLayout, s, t.opts.Today.Location())
	if err != nil {
		t.stats.UnparsedRelease++
		return nil, false
	}

	year := date.Year()

	return &year, !date.After(startOfDay(t.opts.Today))
}

func (t *Transformer) posterURL(raw models.RawRecord) string {
	v, _ := raw.Lookup(models.FieldPosterPath)

	path, ok := v.(string)
	if !ok || path == "" {
		return ""
	}

	return t.opts.PosterBaseURL + path
}

func (t *Transformer) parseRating(raw models.RawRecord) float64 {
	v, _ := raw.Lookup(models.FieldVoteAverage)

	rating, ok := toFloat(v)
	if !ok {
		t.stats.DefaultRating++
		return 0
	}

	return rating
}

func (t *Transformer) parseDuration(raw models.RawRecord) int {
	v, _ := raw.Lookup(models.FieldRuntime)

	duration, ok := toInt(v)
	if !ok {
		t.stats.DefaultDuration++
		return 0
	}

	return duration
}

func textField(raw models.RawRecord, key string) string {
	v, _ := raw.Lookup(key)
	s, _ := toText(v)

	return s
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
