//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"backr/internal/modkit/repokit"
	"backr/internal/platform/store"
	"backr/internal/services/offers/domain"

	"github.com/google/uuid"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

// one statement per Exec; the pool runs extended protocol
var schema = []string{
	`CREATE TABLE brands (
	id             uuid PRIMARY KEY,
	name           text NOT NULL,
	domain_pattern text NOT NULL UNIQUE,
	created_at     timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE creators (
	id         uuid PRIMARY KEY,
	platform   text NOT NULL,
	channel_id text NOT NULL,
	name       text NOT NULL,
	ref_code   text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	UNIQUE (platform, channel_id)
)`,
	`CREATE TABLE offers (
	id            uuid PRIMARY KEY,
	creator_id    uuid NOT NULL REFERENCES creators(id),
	brand_id      uuid REFERENCES brands(id),
	code          text NOT NULL,
	context       text NOT NULL DEFAULT '',
	source        text NOT NULL DEFAULT '',
	video_id      text NOT NULL DEFAULT '',
	first_seen_at timestamptz NOT NULL DEFAULT now(),
	last_seen_at  timestamptz NOT NULL DEFAULT now(),
	UNIQUE (creator_id, code)
)`,
}

func TestUpsertAttributeList_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "backr-pg-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	for _, ddl := range schema {
		if _, err := st.PG.Exec(ctx, ddl); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	creatorID := uuid.NewString()
	brandID := uuid.NewString()
	if _, err := st.PG.Exec(ctx,
		`INSERT INTO creators (id, platform, channel_id, name, ref_code) VALUES ($1, 'youtube', 'UCchan1', 'Alex', 'ALEX-1234')`,
		creatorID); err != nil {
		t.Fatalf("seed creator: %v", err)
	}
	if _, err := st.PG.Exec(ctx,
		`INSERT INTO brands (id, name, domain_pattern) VALUES ($1, 'Gymshark', 'gymshark.com')`,
		brandID); err != nil {
		t.Fatalf("seed brand: %v", err)
	}

	r := repokit.MustBind[Storage](NewPG(), st.PG)

	// first sighting inserts, unattributed
	res1, err := r.Upsert(ctx, domain.UpsertInput{
		CreatorID: creatorID, Code: "ALEX15",
		Context: "use code ALEX15", Source: "youtube:description", VideoID: "vid00000001",
	})
	if err != nil {
		t.Fatalf("upsert 1: %v", err)
	}
	if !res1.Created || res1.Offer.BrandID != "" {
		t.Fatalf("res1 = %+v", res1)
	}

	// re-sighting with a brand updates in place and fills the brand
	res2, err := r.Upsert(ctx, domain.UpsertInput{
		CreatorID: creatorID, BrandID: brandID, Code: "ALEX15",
		Context: "15% off with ALEX15", Source: "youtube:transcript", VideoID: "vid00000002",
	})
	if err != nil {
		t.Fatalf("upsert 2: %v", err)
	}
	if res2.Created {
		t.Fatalf("re-sighting should not create")
	}
	if res2.Offer.ID != res1.Offer.ID || res2.Offer.BrandID != brandID {
		t.Fatalf("res2 = %+v", res2.Offer)
	}
	if res2.Offer.VideoID != "vid00000002" {
		t.Fatalf("video not refreshed: %+v", res2.Offer)
	}

	// a known brand is sticky against later unattributed sightings
	res3, err := r.Upsert(ctx, domain.UpsertInput{
		CreatorID: creatorID, Code: "ALEX15", Source: "youtube:description",
	})
	if err != nil {
		t.Fatalf("upsert 3: %v", err)
	}
	if res3.Offer.BrandID != brandID {
		t.Fatalf("brand should stick: %+v", res3.Offer)
	}

	// second offer, attributed after the fact
	res4, err := r.Upsert(ctx, domain.UpsertInput{
		CreatorID: creatorID, Code: "ALEX20", Source: "youtube:description",
	})
	if err != nil {
		t.Fatalf("upsert 4: %v", err)
	}
	if err := r.Attribute(ctx, res4.Offer.ID, brandID); err != nil {
		t.Fatalf("attribute: %v", err)
	}
	got, err := r.Get(ctx, res4.Offer.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BrandID != brandID {
		t.Fatalf("attribute did not land: %+v", got)
	}

	// listing filters by code and pages by keyset
	page1, next, err := r.List(ctx, domain.Filters{CreatorID: creatorID}, domain.AfterKey{}, 1)
	if err != nil {
		t.Fatalf("list 1: %v", err)
	}
	if len(page1) != 1 || next.ID == "" {
		t.Fatalf("page1 = %+v next = %+v", page1, next)
	}
	page2, _, err := r.List(ctx, domain.Filters{CreatorID: creatorID}, next, 10)
	if err != nil {
		t.Fatalf("list 2: %v", err)
	}
	if len(page2) != 1 || page2[0].ID == page1[0].ID {
		t.Fatalf("page2 = %+v", page2)
	}

	byCode, _, err := r.List(ctx, domain.Filters{Code: "alex20"}, domain.AfterKey{}, 10)
	if err != nil {
		t.Fatalf("list by code: %v", err)
	}
	if len(byCode) != 1 || byCode[0].Code != "ALEX20" {
		t.Fatalf("byCode = %+v", byCode)
	}
}
