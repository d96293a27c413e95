package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "backr/internal/platform/errors"
	pnet "backr/internal/platform/net"
	phttp "backr/internal/platform/net/http"
)

// helper to build a request with a request id in context
func reqWithReqID(method, path, rid string) *stdhttp.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, stdhttp.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != stdhttp.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestHandleOKAndNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.OK(map[string]string{"a": "b"})
	})(rec, req)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("OK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}

	// NoContent should not write a JSON body
	recN := httptest.NewRecorder()
	phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.NoContent()
	})(recN, req)
	if recN.Code != stdhttp.StatusNoContent {
		t.Fatalf("NoContent code: %d", recN.Code)
	}
	if recN.Body.Len() != 0 {
		t.Fatalf("NoContent should have empty body, got %q", recN.Body.String())
	}
}

func TestHandleErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/missing", "rid-2")
	phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.Error(perr.NotFoundf("offer %s", "abc"))
	})(rec, req)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("error code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Error == "" || env.StatusCode != 404 || env.RequestID != "rid-2" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/list", "rid-3")
	phttp.Handle(func(*stdhttp.Request) phttp.Response {
		return phttp.List([]int{1, 2, 3}, 3, 50, "cur123")
	})(rec, req)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("List code: %d", rec.Code)
	}
	var env struct {
		Data struct {
			Items []int      `json:"items"`
			Page  phttp.Page `json:"page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Items) != 3 || env.Data.Page.Cursor != "cur123" || env.Data.Page.PageSize != 50 {
		t.Fatalf("bad list payload: %+v", env.Data)
	}
}
