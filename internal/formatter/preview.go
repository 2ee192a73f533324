package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"moviedata/internal/models"
	"moviedata/pkg/utils"
)

// maxTitleLength bounds the title column of the preview.
const maxTitleLength = 40

var previewHeader = []string{"id", "title", "year", "rating", "duration", "released", "genre"}

// FormatPreview renders the first limit movies as a Markdown table.
func FormatPreview(movies []models.Movie, limit int) string {
	if limit > len(movies) {
		limit = len(movies)
	}

	if limit <= 0 {
		return ""
	}

	helper := utils.NewStringHelper()

	rows := make([][]string, 0, limit+1)
	rows = append(rows, previewHeader)

	for _, m := range movies[:limit] {
		year := ""
		if m.Year != nil {
			year = strconv.Itoa(*m.Year)
		}

		rows = append(rows, []string{
			fmt.Sprint(m.ID),
			helper.TruncateString(m.Title, maxTitleLength),
			year,
			strconv.FormatFloat(m.Rating, 'f', -1, 64),
			strconv.Itoa(m.Duration),
			strconv.FormatBool(m.Released),
			strings.Join(m.Genre, ", "),
		})
	}

	return strings.Join(FormatTable(rows), "\n")
}
