package service

import (
	"context"
	"testing"

	"backr/internal/services/sightings/domain"
)

func TestWriteBatch_NoBackendDropsWrites(t *testing.T) {
	s := New(nil)
	err := s.WriteBatch(context.Background(), []domain.Sighting{
		{VideoID: "vid00000001", Code: "ALEX15"},
	})
	if err != nil {
		t.Fatalf("nil backend should drop the batch: %v", err)
	}
}

func TestTopCodes_NoBackendIsEmpty(t *testing.T) {
	s := New(nil)
	rows, err := s.TopCodes(context.Background(), 5)
	if err != nil || rows != nil {
		t.Fatalf("TopCodes = %v, %v; want empty, nil", rows, err)
	}
}
