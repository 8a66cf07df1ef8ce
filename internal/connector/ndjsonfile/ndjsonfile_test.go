package ndjsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/scour/internal/connector"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day.ndjson")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadNDJSON(t *testing.T) {
	path := writeFile(t,
		`{"inspection_id":"1234567","city":"CHICAGO","zip":60614}`+"\n"+
			`{"inspection_id":"7654321","city":null,"violations":"3 4 text "}`+"\n")

	ds, err := (&Source{}).Read(context.Background(), connector.Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if ds.NumRows() != 2 {
		t.Fatalf("rows = %d", ds.NumRows())
	}

	// Schema is the sorted union of keys.
	want := []string{"city", "inspection_id", "violations", "zip"}
	got := ds.ColumnNames()
	if len(got) != len(want) {
		t.Fatalf("columns = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}

	// JSON numbers stay numeric; nulls and absent keys are null cells.
	if got := ds.Value(0, "zip"); got != float64(60614) {
		t.Fatalf("zip = %v (%T)", got, got)
	}
	if got := ds.Value(0, "violations"); got != nil {
		t.Fatalf("absent violations = %v", got)
	}
	if got := ds.Value(1, "city"); got != nil {
		t.Fatalf("null city = %v", got)
	}
}

func TestReadNDJSONSkipsBlankLines(t *testing.T) {
	path := writeFile(t, `{"a":"1"}`+"\n\n"+`{"a":"2"}`+"\n")
	ds, err := (&Source{}).Read(context.Background(), connector.Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if ds.NumRows() != 2 {
		t.Fatalf("rows = %d", ds.NumRows())
	}
}

func TestReadNDJSONBadLine(t *testing.T) {
	path := writeFile(t, "{not json}\n")
	if _, err := (&Source{}).Read(context.Background(), connector.Config{Path: path}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRegistered(t *testing.T) {
	if _, err := connector.Get("ndjson"); err != nil {
		t.Fatal(err)
	}
}
