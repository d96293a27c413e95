package modkit

import (
	"net/http"
	"testing"

	phttp "backr/internal/platform/net/http"
)

func TestBuildDefaultsAndOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	reg := func(phttp.Router) {}

	b := Build(
		WithName("widgets"),
		WithPrefix("/widgets"),
		WithMiddlewares(mw),
		WithPorts(struct{ N int }{N: 7}),
		WithRegister(reg),
	)

	if b.Name != "widgets" || b.Prefix != "/widgets" {
		t.Fatalf("built = %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw = %d", len(b.Mw))
	}
	if b.Ports == nil || b.Register == nil {
		t.Fatalf("ports/register not captured")
	}
}

func TestBuildEmpty(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil {
		t.Fatalf("built = %+v", b)
	}
}
