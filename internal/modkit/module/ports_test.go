package module

import (
	"testing"

	phttp "backr/internal/platform/net/http"
)

type greeter interface{ Greet() string }

type greeterImpl struct{}

func (greeterImpl) Greet() string { return "hi" }

type fakeModule struct {
	name  string
	ports any
}

func (m *fakeModule) MountRoutes(phttp.Router) {}
func (m *fakeModule) Ports() any               { return m.ports }
func (m *fakeModule) Name() string             { return m.name }

func TestPortsOfDirect(t *testing.T) {
	m := &fakeModule{name: "a", ports: greeterImpl{}}
	g, ok := PortsOf[greeter](m)
	if !ok || g.Greet() != "hi" {
		t.Fatalf("direct lookup failed")
	}
}

func TestPortsOfStructField(t *testing.T) {
	type bundle struct {
		G greeter
	}
	m := &fakeModule{name: "b", ports: bundle{G: greeterImpl{}}}
	g, ok := PortsOf[greeter](m)
	if !ok || g.Greet() != "hi" {
		t.Fatalf("field lookup failed")
	}
}

func TestPortsOfMissing(t *testing.T) {
	m := &fakeModule{name: "c", ports: struct{ N int }{N: 1}}
	if _, ok := PortsOf[greeter](m); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := PortsOf[greeter](&fakeModule{name: "d"}); ok {
		t.Fatalf("nil ports should miss")
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustPortsOf[greeter](&fakeModule{name: "e"})
}
