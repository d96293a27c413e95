package repo

import (
	"context"
	"errors"
	"testing"

	"backr/internal/modkit/repokit"
	perr "backr/internal/platform/errors"

	"github.com/jackc/pgx/v5"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

// errQueryer fails every call with a fixed error
type errQueryer struct{ err error }

func (f *errQueryer) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, f.err
}

func (f *errQueryer) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, f.err
}

func (f *errQueryer) QueryRow(context.Context, string, ...any) repokit.Row {
	return errRow{f.err}
}

func TestGet_MissIsNotFound(t *testing.T) {
	st := NewPG().Bind(&errQueryer{err: pgx.ErrNoRows})
	_, err := st.Get(context.Background(), "11111111-1111-1111-1111-111111111111")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestGet_OutageIsNotAMiss(t *testing.T) {
	st := NewPG().Bind(&errQueryer{err: errors.New("connection refused")})

	if _, err := st.GetByChannel(context.Background(), "youtube", "UCchan1"); perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("GetByChannel code = %v, want db", perr.CodeOf(err))
	}
	if _, err := st.FindByName(context.Background(), "youtube", "Alex"); perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("FindByName code = %v, want db", perr.CodeOf(err))
	}
}
