package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "backr/internal/platform/errors"
)

type searchIn struct {
	Code  string `json:"code" validate:"omitempty,min=3"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=200"`
}

func TestParseJSON_OK(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"code":"NIKE20","limit":10}`))
	in, err := ParseJSON[searchIn](r)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if in.Code != "NIKE20" || in.Limit != 10 {
		t.Fatalf("in = %+v", in)
	}
}

func TestParseJSON_BadJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"code":`))
	_, err := ParseJSON[searchIn](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want json error, got %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"nope":1}`))
	_, err := ParseJSON[searchIn](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want json error, got %v", err)
	}
}

func TestParseJSON_ValidationFieldName(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"limit":9999}`))
	_, err := ParseJSON[searchIn](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	e, _ := perr.As(err)
	if e.Field() != "limit" {
		t.Fatalf("field = %q", e.Field())
	}
}
