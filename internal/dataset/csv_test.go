package dataset

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "id,title,genres,vote_average\n" +
		"278,The Shawshank Redemption,\"[{'id': 18, 'name': 'Drama'}]\",8.7\n" +
		"238,The Godfather,\"[{'id': 18, 'name': 'Drama'}, {'id': 80, 'name': 'Crime'}]\",8.7\n"

	table, err := ReadCSV(strings.NewReader(input), DefaultDialect)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	if got, _ := table.Rows[1].Get("title"); got != "The Godfather" {
		t.Errorf("Rows[1].title = %q, want The Godfather", got)
	}

	if got, _ := table.Rows[0].Get("genres"); got != "[{'id': 18, 'name': 'Drama'}]" {
		t.Errorf("Rows[0].genres = %q", got)
	}

	records := table.Records()
	if records[0]["id"] != "278" {
		t.Errorf("records[0].id = %#v, want \"278\"", records[0]["id"])
	}
}

func TestReadCSV_BOMAndDialect(t *testing.T) {
	input := "\xEF\xBB\xBFid;title\n# exported 2024-01-01\n1;Amélie\n"

	table, err := ReadCSV(strings.NewReader(input), Dialect{Delimiter: ';', Comment: '#'})
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if table.Header[0] != "id" {
		t.Errorf("Header[0] = %q, want id without BOM", table.Header[0])
	}

	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}

	if got, _ := table.Rows[0].Get("title"); got != "Amélie" {
		t.Errorf("title = %q, want Amélie", got)
	}
}

func TestReadCSV_RaggedRows(t *testing.T) {
	input := "id,title,runtime\n1,Heat\n2,Ronin,122,extra,cells\n"

	table, err := ReadCSV(strings.NewReader(input), DefaultDialect)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if _, ok := table.Rows[0].Get("runtime"); ok {
		t.Error("short row should report runtime as missing")
	}

	if rec := table.Rows[0].Record(); rec["runtime"] != nil {
		t.Errorf("missing cell = %#v, want nil", rec["runtime"])
	}

	if got, _ := table.Rows[1].Get("runtime"); got != "122" {
		t.Errorf("runtime = %q, want 122", got)
	}

	if table.SurplusCells != 2 {
		t.Errorf("SurplusCells = %d, want 2", table.SurplusCells)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(""), DefaultDialect)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(table.Rows) != 0 || len(table.Records()) != 0 {
		t.Errorf("Expected no rows, got %d", len(table.Rows))
	}
}

func TestRow_MarshalJSON(t *testing.T) {
	input := "title,id,title,note\nFirst,7,Second\n"

	table, err := ReadCSV(strings.NewReader(input), DefaultDialect)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	data, err := json.Marshal(table.Rows[0])
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"title":"Second","id":"7","note":null}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestRow_MarshalJSON_NoHTMLEscape(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("title\nTom & Jerry <3\n"), DefaultDialect)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	data, err := EncodeJSON(table.Rows, 0)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	if string(data) != "[{\"title\":\"Tom & Jerry <3\"}]\n" {
		t.Errorf("EncodeJSON = %q", data)
	}
}
