package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"backr/internal/platform/store"
	"backr/internal/services/sightings/domain"
)

type fakeCH struct {
	insertTable string
	insertRows  [][]any
	querySQL    string
	queryArgs   []any
	rows        *fakeRows
}

func (f *fakeCH) Insert(ctx context.Context, table string, data any) error {
	f.insertTable = table
	f.insertRows = data.([][]any)
	return nil
}

func (f *fakeCH) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	f.querySQL = sql
	f.queryArgs = args
	if f.rows == nil {
		f.rows = &fakeRows{}
	}
	return f.rows, nil
}

func (f *fakeCH) Close() error { return nil }

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	*dest[0].(*string) = row[0].(string)
	*dest[1].(*uint64) = row[1].(uint64)
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"code", "n"} }

func TestWriteBatch(t *testing.T) {
	ch := &fakeCH{}
	r := NewCH(ch)

	seen := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	err := r.WriteBatch(context.Background(), []domain.Sighting{
		{
			VideoID: "vid00000001", ChannelID: "UCchan1", Code: "ALEX15",
			Pattern: "keyword", ProbableBrand: "Gymshark", BrandID: "b-1",
			Source: "youtube:description", SeenAt: seen,
		},
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if ch.insertTable != "code_sightings" {
		t.Fatalf("table = %q", ch.insertTable)
	}
	if len(ch.insertRows) != 1 {
		t.Fatalf("rows = %d", len(ch.insertRows))
	}
	row := ch.insertRows[0]
	if row[0] != "vid00000001" || row[2] != "ALEX15" || row[7] != seen {
		t.Fatalf("row = %v", row)
	}
}

func TestWriteBatchEmpty(t *testing.T) {
	ch := &fakeCH{}
	if err := NewCH(ch).WriteBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if ch.insertRows != nil {
		t.Fatalf("no insert expected")
	}
}

func TestTopCodes(t *testing.T) {
	ch := &fakeCH{rows: &fakeRows{data: [][]any{
		{"ALEX15", uint64(12)},
		{"RIDGE20", uint64(5)},
	}}}
	got, err := NewCH(ch).TopCodes(context.Background(), 10)
	if err != nil {
		t.Fatalf("top codes: %v", err)
	}
	if len(got) != 2 || got[0].Code != "ALEX15" || got[0].Count != 12 {
		t.Fatalf("got %+v", got)
	}
	if !strings.Contains(ch.querySQL, "GROUP BY code") {
		t.Fatalf("sql = %q", ch.querySQL)
	}
	if len(ch.queryArgs) != 1 || ch.queryArgs[0] != 10 {
		t.Fatalf("args = %v", ch.queryArgs)
	}
}
