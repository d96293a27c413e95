// Package domain holds offer API DTOs
package domain

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	perr "backr/internal/platform/errors"
	offersdom "backr/internal/services/offers/domain"
)

// SearchInput filters an offer listing
// swagger:model
type SearchInput struct {
	CreatorID string `json:"creator_id" validate:"omitempty,uuid4" example:"6f1e8e1a-1111-4222-8333-444455556666"`
	BrandID   string `json:"brand_id"   validate:"omitempty,uuid4" example:"6f1e8e1a-7777-4888-9999-000011112222"`
	Code      string `json:"code"       validate:"omitempty,min=3,max=25" example:"ALEX15"`
	Cursor    string `json:"cursor"     validate:"omitempty,max=128"`
	Limit     int    `json:"limit"      validate:"omitempty,min=1,max=200" example:"50"`
}

// OfferRow is one offer in API shape
// swagger:model
type OfferRow struct {
	ID          string `json:"id"`
	CreatorID   string `json:"creator_id"`
	BrandID     string `json:"brand_id,omitempty"`
	Code        string `json:"code"`
	Context     string `json:"context,omitempty"`
	Source      string `json:"source"`
	VideoID     string `json:"video_id,omitempty"`
	FirstSeenAt string `json:"first_seen_at"`
	LastSeenAt  string `json:"last_seen_at"`
}

// FromOffer maps a core offer into API shape
func FromOffer(o offersdom.Offer) OfferRow {
	return OfferRow{
		ID:          o.ID,
		CreatorID:   o.CreatorID,
		BrandID:     o.BrandID,
		Code:        o.Code,
		Context:     o.Context,
		Source:      o.Source,
		VideoID:     o.VideoID,
		FirstSeenAt: o.FirstSeenAt.UTC().Format(time.RFC3339),
		LastSeenAt:  o.LastSeenAt.UTC().Format(time.RFC3339),
	}
}

// EncodeCursor packs a keyset position into an opaque token. An empty key
// encodes to the empty string, meaning no further pages
func EncodeCursor(k offersdom.AfterKey) string {
	if k.ID == "" {
		return ""
	}
	raw := fmt.Sprintf("%d:%s", k.LastSeenAt.UnixNano(), k.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor unpacks an opaque token back into a keyset position
func DecodeCursor(s string) (offersdom.AfterKey, error) {
	if s == "" {
		return offersdom.AfterKey{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return offersdom.AfterKey{}, perr.InvalidArgf("malformed cursor")
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return offersdom.AfterKey{}, perr.InvalidArgf("malformed cursor")
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return offersdom.AfterKey{}, perr.InvalidArgf("malformed cursor")
	}
	return offersdom.AfterKey{LastSeenAt: time.Unix(0, nanos).UTC(), ID: parts[1]}, nil
}
