// Package service orchestrates discovery runs: find videos, extract codes,
// attribute brands, persist offers and sightings
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"backr/internal/core/brandmatch"
	"backr/internal/core/brandsig"
	"backr/internal/core/codes"
	"backr/internal/platform/logger"

	brandsdom "backr/internal/services/brands/domain"
	creatorsdom "backr/internal/services/creators/domain"
	"backr/internal/services/discovery/domain"
	offersdom "backr/internal/services/offers/domain"
	sightingsdom "backr/internal/services/sightings/domain"

	perr "backr/internal/platform/errors"
)

// Deps are the ports a run drives. All are required except Transcripts and
// Sponsors, which degrade to description-only scanning when nil
type Deps struct {
	Videos      domain.VideoSource
	Transcripts domain.TranscriptSource
	Sponsors    domain.SponsorSource

	Brands       brandsdom.CatalogPort
	BrandEnsurer brandsdom.EnsurePort
	Creators     creatorsdom.EnsurePort
	Offers       offersdom.WriterPort
	Sightings    sightingsdom.WriterPort
}

// Opts tune a runner
type Opts struct {
	Workers    int  // concurrent video pipelines, default 4
	DefaultMax int  // video cap when RunInput.Max is 0, default 20
	DryRun     bool // extract and count but persist nothing
}

// Svc implements domain.RunnerPort
type Svc struct {
	deps Deps
	opts Opts
	log  *logger.Logger
}

// New constructs a runner
func New(deps Deps, opts Opts) *Svc {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.DefaultMax <= 0 {
		opts.DefaultMax = 20
	}
	return &Svc{deps: deps, opts: opts, log: logger.Named("discovery")}
}

// Run executes one discovery pass. Individual video failures are logged
// and skipped; the run only fails when listing candidates fails
func (s *Svc) Run(ctx context.Context, in domain.RunInput) (domain.Stats, error) {
	max := in.Max
	if max <= 0 {
		max = s.opts.DefaultMax
	}

	ids, err := s.listCandidates(ctx, in, max)
	if err != nil {
		return domain.Stats{}, err
	}
	ids = dedup(ids)
	s.log.Info().Str("strategy", string(in.Strategy)).Int("videos", len(ids)).Msg("discovery run start")

	var (
		mu    sync.Mutex
		stats domain.Stats
		wg    sync.WaitGroup
	)
	work := make(chan string)

	for i := 0; i < s.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range work {
				vs, err := s.scanVideo(ctx, id)
				mu.Lock()
				if err != nil {
					stats.Skipped++
				} else {
					stats.VideosScanned++
					stats.CodesFound += vs.CodesFound
					stats.OffersCreated += vs.OffersCreated
					stats.OffersUpdated += vs.OffersUpdated
					stats.BrandsMatched += vs.BrandsMatched
					stats.Sponsored += vs.Sponsored
				}
				mu.Unlock()
				if err != nil {
					s.log.Warn().Err(err).Str("video_id", id).Msg("video skipped")
				}
			}
		}()
	}

	for _, id := range ids {
		select {
		case <-ctx.Done():
			close(work)
			wg.Wait()
			return stats, ctx.Err()
		case work <- id:
		}
	}
	close(work)
	wg.Wait()

	s.log.Info().
		Int("scanned", stats.VideosScanned).
		Int("codes", stats.CodesFound).
		Int("created", stats.OffersCreated).
		Int("matched", stats.BrandsMatched).
		Int("skipped", stats.Skipped).
		Msg("discovery run done")
	return stats, nil
}

func (s *Svc) listCandidates(ctx context.Context, in domain.RunInput, max int) ([]string, error) {
	switch in.Strategy {
	case domain.StrategySearch:
		if in.Query == "" {
			return nil, perr.InvalidArgf("search strategy requires a query")
		}
		return s.deps.Videos.Search(ctx, in.Query, max)
	case domain.StrategySponsored:
		if in.Query == "" {
			return nil, perr.InvalidArgf("sponsored strategy requires a query")
		}
		if s.deps.Sponsors == nil {
			return nil, perr.InvalidArgf("sponsored strategy requires a sponsor source")
		}
		// overfetch, then keep only videos with known sponsor segments
		ids, err := s.deps.Videos.Search(ctx, in.Query, max*3)
		if err != nil {
			return nil, err
		}
		kept := make([]string, 0, max)
		for _, id := range ids {
			ok, err := s.deps.Sponsors.Sponsored(ctx, id)
			if err != nil {
				s.log.Debug().Err(err).Str("video_id", id).Msg("sponsor check failed")
				continue
			}
			if ok {
				kept = append(kept, id)
				if len(kept) >= max {
					break
				}
			}
		}
		return kept, nil
	case domain.StrategyChannel:
		if in.ChannelID == "" {
			return nil, perr.InvalidArgf("channel strategy requires a channel id")
		}
		return s.deps.Videos.ChannelVideos(ctx, in.ChannelID, max)
	default:
		return nil, perr.InvalidArgf("unknown strategy %q", in.Strategy)
	}
}

// scanVideo runs the full extraction pipeline for one video
func (s *Svc) scanVideo(ctx context.Context, id string) (domain.Stats, error) {
	var vs domain.Stats

	meta, err := s.deps.Videos.Video(ctx, id)
	if err != nil {
		return vs, err
	}

	transcript := ""
	if s.deps.Transcripts != nil {
		if tr, err := s.deps.Transcripts.Fetch(ctx, id); err == nil {
			transcript = tr
		} else {
			// transcripts are best effort; description-only is fine
			s.log.Debug().Err(err).Str("video_id", id).Msg("no transcript")
		}
	}

	if s.deps.Sponsors != nil {
		if ok, err := s.deps.Sponsors.Sponsored(ctx, id); err == nil && ok {
			vs.Sponsored = 1
		}
	}

	text := joined(meta.Title, meta.Description, transcript)

	recs := codes.ExtractWithContext(text)
	if len(recs) == 0 {
		return vs, nil
	}
	vs.CodesFound = len(recs)

	// indicators come from the description only; titles and transcripts
	// mention too many unrelated sites
	sigs := brandsig.Extract(meta.Description)

	catalog, err := s.deps.Brands.Catalog(ctx)
	if err != nil {
		return vs, err
	}

	// dry runs extract and match but never write
	if s.opts.DryRun {
		cat := matchCatalog(catalog)
		for _, rec := range recs {
			if _, ok := brandmatch.Match(rec.Code, rec.Context, cat); ok {
				vs.BrandsMatched++
			}
		}
		return vs, nil
	}

	creator, err := s.deps.Creators.Ensure(ctx, "youtube", meta.ChannelID, meta.ChannelName)
	if err != nil {
		return vs, err
	}

	now := time.Now().UTC()
	sightings := make([]sightingsdom.Sighting, 0, len(recs))

	for _, rec := range recs {
		brandID := s.resolveBrand(ctx, rec, sigs, catalog)
		if brandID != "" {
			vs.BrandsMatched++
		}

		res, err := s.deps.Offers.Upsert(ctx, offersdom.UpsertInput{
			CreatorID: creator.ID,
			BrandID:   brandID,
			Code:      rec.Code,
			Context:   rec.Context,
			Source:    sourceOf(rec.Code, meta.Description),
			VideoID:   id,
		})
		if err != nil {
			return vs, err
		}
		if res.Created {
			vs.OffersCreated++
		} else {
			vs.OffersUpdated++
		}
		// a brand learned after the offer was first stored backfills it
		if brandID != "" && res.Offer.BrandID == "" {
			if err := s.deps.Offers.Attribute(ctx, res.Offer.ID, brandID); err != nil {
				return vs, err
			}
		}

		sightings = append(sightings, sightingsdom.Sighting{
			VideoID:       id,
			ChannelID:     meta.ChannelID,
			Code:          rec.Code,
			Pattern:       string(rec.Pattern),
			ProbableBrand: rec.ProbableBrand,
			BrandID:       brandID,
			Source:        sourceOf(rec.Code, meta.Description),
			SeenAt:        now,
		})
	}

	if s.deps.Sightings != nil && len(sightings) > 0 {
		if err := s.deps.Sightings.WriteBatch(ctx, sightings); err != nil {
			// the curated offers already landed; losing the raw stream
			// for one video is tolerable
			s.log.Warn().Err(err).Str("video_id", id).Msg("sighting write failed")
		}
	}
	return vs, nil
}

// resolveBrand matches a code against the catalog, and when nothing
// matches, tries to mint a brand from a web indicator that corroborates
// the code or its context
func (s *Svc) resolveBrand(
	ctx context.Context,
	rec codes.Record,
	sigs []brandsig.Indicator,
	catalog []brandsdom.Brand,
) string {
	if b, ok := brandmatch.Match(rec.Code, rec.Context, matchCatalog(catalog)); ok {
		return b.ID
	}

	sig, ok := corroborating(rec, sigs)
	if !ok {
		return ""
	}
	b, err := s.deps.BrandEnsurer.Ensure(ctx, sig.Name, sig.Domain)
	if err != nil {
		s.log.Warn().Err(err).Str("domain", sig.Domain).Msg("brand ensure failed")
		return ""
	}
	return b.ID
}

func matchCatalog(catalog []brandsdom.Brand) []brandmatch.Brand {
	cat := make([]brandmatch.Brand, len(catalog))
	for i, b := range catalog {
		cat[i] = brandmatch.Brand{ID: b.ID, Name: b.Name, DomainPattern: b.DomainPattern}
	}
	return cat
}

// corroborating picks the first indicator tied to this specific code: its
// first domain label appears in the code, or the domain appears in the
// code's context window. An indicator with no tie stays evidence only
func corroborating(rec codes.Record, sigs []brandsig.Indicator) (brandsig.Indicator, bool) {
	codeLower := strings.ToLower(rec.Code)
	ctxLower := strings.ToLower(rec.Context)
	for _, sig := range sigs {
		label := sig.Domain
		if i := strings.IndexByte(label, '.'); i > 0 {
			label = label[:i]
		}
		if len(label) >= 3 && strings.Contains(codeLower, label) {
			return sig, true
		}
		if strings.Contains(ctxLower, sig.Domain) {
			return sig, true
		}
	}
	return brandsig.Indicator{}, false
}

// dedup drops repeat video ids keeping first-seen order
func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// joined newline-joins the non-empty parts
func joined(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// sourceOf tags where the code was seen. Codes present in the description
// are credited there even when the transcript repeats them
func sourceOf(code, description string) string {
	if strings.Contains(strings.ToUpper(description), code) {
		return "youtube:description"
	}
	return "youtube:transcript"
}
