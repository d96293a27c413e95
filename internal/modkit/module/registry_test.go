package module

import "testing"

func TestRegistryRoundTrip(t *testing.T) {
	Reset()
	defer Reset()

	type ports struct{ N int }
	Register("widgets", ports{N: 3})

	got, ok := PortsAs[ports]("widgets")
	if !ok || got.N != 3 {
		t.Fatalf("got %+v ok=%v", got, ok)
	}

	if _, ok := PortsAs[ports]("missing"); ok {
		t.Fatalf("missing name should not resolve")
	}
	if _, ok := PortsAs[string]("widgets"); ok {
		t.Fatalf("wrong type should not resolve")
	}
}
