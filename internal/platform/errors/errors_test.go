package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndRoot(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "query failed")
	if Root(err) != cause {
		t.Fatalf("Root should return the deepest cause")
	}
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped error should match cause via errors.Is")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundf("x"), http.StatusNotFound},
		{InvalidArgf("x"), http.StatusUnprocessableEntity},
		{DuplicateKeyf("x"), http.StatusConflict},
		{JSONErrf("x"), http.StatusBadRequest},
		{Upstreamf("x"), http.StatusBadGateway},
		{DBf("x"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := InvalidArgf("bad code")
	withField := WithField(base, "code")
	e1, _ := As(base)
	e2, _ := As(withField)
	if e1.Field() != "" {
		t.Fatalf("original mutated: %q", e1.Field())
	}
	if e2.Field() != "code" {
		t.Fatalf("field = %q", e2.Field())
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(NotFoundf("no offer"))
	if w.Code != ErrorCodeNotFound || w.Message != "no offer" {
		t.Fatalf("wire = %+v", w)
	}
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil wire = %+v", w)
	}
}
