package muhurat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
	"github.com/vedicworks/muhurat-api/pkg/metrics"
)

const (
	maxResultsCeiling = 50
	hardCapFloor      = 50
)

type service struct {
	cfg      Config
	calc     *astro.Calculator
	resolver astro.LocationResolver
	mapper   TraitMapper
	store    Store
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewService wires up the muhurat suggestion engine.
func NewService(cfg Config, calc *astro.Calculator, resolver astro.LocationResolver, mapper TraitMapper, store Store, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		calc:     calc,
		resolver: resolver,
		mapper:   mapper,
		store:    store,
		metrics:  m,
		logger:   logger.With("component", "muhurat.service"),
	}
}

// scanPhase selects the filtering strategy for one pass over the slot space.
type scanPhase int

const (
	// phaseStrict applies trait filters and the minimum score threshold.
	phaseStrict scanPhase = iota
	// phaseRelaxed drops both; it runs only when the strict pass found nothing.
	phaseRelaxed
)

func (p scanPhase) String() string {
	if p == phaseRelaxed {
		return "relaxed"
	}
	return "strict"
}

func (s *service) Suggest(ctx context.Context, req Request) (Response, error) {
	startDate, endDate, err := s.validateRange(req)
	if err != nil {
		return Response{}, err
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = s.cfg.DefaultResults
	}
	if maxResults < 1 || maxResults > maxResultsCeiling {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("maxResults must be between 1 and %d", maxResultsCeiling), nil)
	}

	cacheKey := suggestionKey(req)
	if cached, ok, err := s.store.GetSuggestion(ctx, cacheKey); err != nil {
		s.logger.Warn("suggestion cache lookup failed", "error", err)
	} else if ok {
		s.metrics.CacheHits.Inc()
		cached.Cached = true
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	traits := ResolveTraits(ctx, s.mapper, req.QualitiesText, req.QualitiesSelected, req.QualitiesPriority)
	weights := PersonalizeWeights(BaseWeights(), traits)

	// Resolve the candidate location once; every slot reuses it.
	location, err := s.resolver.Resolve(ctx, req.Location)
	if err != nil {
		return Response{}, err
	}
	tz, err := location.TZ()
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeLocationError, "unknown timezone "+location.Timezone, err)
	}

	parentsMeta, err := s.resolveParents(ctx, req.Parents)
	if err != nil {
		return Response{}, err
	}

	hardCap := maxResults * s.cfg.HardCapMultiplier
	if hardCap < hardCapFloor {
		hardCap = hardCapFloor
	}

	scan := scanParams{
		startDate: startDate,
		endDate:   endDate,
		location:  location,
		tz:        tz,
		traits:    traits,
		weights:   weights,
		parents:   parentsMeta,
		hardCap:   hardCap,
	}

	scanStart := time.Now()
	results := s.runScan(scan, phaseStrict)
	if len(results) == 0 {
		// Relaxation fallback: identical enumeration without trait filters or
		// score threshold, so valid inputs never come back empty when any
		// slot at all is computable.
		results = s.runScan(scan, phaseRelaxed)
	}
	s.metrics.ScanDuration.Observe(time.Since(scanStart).Seconds())

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Date != results[j].Date {
			return results[i].Date < results[j].Date
		}
		return results[i].Time < results[j].Time
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	resp := Response{
		Results:     results,
		TraitsUsed:  traits,
		WeightsUsed: weights,
	}
	if err := s.store.SaveSuggestion(ctx, cacheKey, resp, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("suggestion cache save failed", "error", err)
	}

	s.logger.Info("muhurat scan complete",
		"start", req.StartDate, "end", req.EndDate,
		"traits", len(traits), "results", len(results))
	return resp, nil
}

type scanParams struct {
	startDate time.Time
	endDate   time.Time
	location  astro.Location
	tz        *time.Location
	traits    []Trait
	weights   Weights
	parents   *ParentsMeta
	hardCap   int
}

// dedupKey is the per-day astrological signature; only the first slot with a
// given signature survives.
type dedupKey struct {
	date             string
	nakshatra        astro.Nakshatra
	pada             int
	rashi            astro.Rashi
	tithi            astro.Tithi
	yoga             astro.Yoga
	karana           astro.Karana
	lagna            astro.Rashi
	eighthHouseRashi astro.Rashi
	jupiterRashi     astro.Rashi
	dashaLord        astro.Planet
}

// runScan enumerates every slot in chronological order, filters, scores,
// deduplicates and stops as soon as the hard cap is reached.
func (s *service) runScan(p scanParams, phase scanPhase) []Candidate {
	minScore := s.cfg.MinScore
	if phase == phaseRelaxed {
		minScore = 0
	}

	results := make([]Candidate, 0, p.hardCap)
	seen := make(map[dedupKey]bool)

	for day := p.startDate; !day.After(p.endDate); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format("2006-01-02")
		for hour := s.cfg.DayStartHour; hour <= s.cfg.DayEndHour; hour++ {
			for minute := 0; minute < 60; minute += s.cfg.SlotMinutes {
				// The window ends exactly on the boundary hour.
				if hour == s.cfg.DayEndHour && minute > 0 {
					break
				}

				local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.tz)
				if InRahuKalam(local) {
					continue
				}

				s.metrics.SlotsScanned.WithLabelValues(phase.String()).Inc()
				fs := s.calc.Compute(local, p.location)

				var parentsDasha *ParentsDasha
				if p.parents != nil {
					parentsDasha = &ParentsDasha{
						Mother: astro.DashaLordAt(p.parents.Mother.BirthMoonLon, p.parents.Mother.BirthUTC, fs.UTC),
						Father: astro.DashaLordAt(p.parents.Father.BirthMoonLon, p.parents.Father.BirthUTC, fs.UTC),
					}
				}

				if phase == phaseStrict && !passesTraitFilters(fs, p.traits) {
					continue
				}

				score := Score(fs, parentsDasha, p.parents, p.weights)
				if score < minScore {
					continue
				}

				key := dedupKey{
					date:             dateStr,
					nakshatra:        fs.Nakshatra,
					pada:             fs.Pada,
					rashi:            fs.Rashi,
					tithi:            fs.Tithi,
					yoga:             fs.Yoga,
					karana:           fs.Karana,
					lagna:            fs.Lagna,
					eighthHouseRashi: fs.EighthHouseRashi,
					jupiterRashi:     fs.JupiterRashi,
					dashaLord:        fs.DashaLord,
				}
				if seen[key] {
					continue
				}
				seen[key] = true

				s.metrics.SlotsKept.WithLabelValues(phase.String()).Inc()
				results = append(results, Candidate{
					Date:                 dateStr,
					Time:                 local.Format("15:04"),
					Nakshatra:            fs.Nakshatra,
					Pada:                 fs.Pada,
					Rashi:                fs.Rashi,
					Tithi:                fs.Tithi,
					Yoga:                 fs.Yoga,
					Karana:               fs.Karana,
					Lagna:                fs.Lagna,
					LagnaLord:            fs.LagnaLord,
					EighthHouseRashi:     fs.EighthHouseRashi,
					JupiterRashi:         fs.JupiterRashi,
					JupiterStrong:        fs.JupiterStrong,
					DashaLord:            fs.DashaLord,
					NinthLord:            fs.NinthLord,
					FourthLord:           fs.FourthLord,
					NinthStrength:        fs.NinthStrength,
					FourthStrength:       fs.FourthStrength,
					ParentsDasha:         parentsDasha,
					RecommendedSyllables: astro.SyllablesFor(fs.Nakshatra, fs.Pada),
					Score:                score,
				})

				// Keep worst-case work bounded regardless of range size.
				if len(results) >= p.hardCap {
					return results
				}
			}
		}
	}
	return results
}

func (s *service) validateRange(req Request) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "startDate must be formatted as YYYY-MM-DD", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "endDate must be formatted as YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "endDate must be >= startDate", nil)
	}
	if int(end.Sub(start).Hours()/24) > s.cfg.MaxRangeDays {
		return time.Time{}, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("date range must be <= %d days", s.cfg.MaxRangeDays), nil)
	}
	return start, end, nil
}

func (s *service) resolveParents(ctx context.Context, parents *ParentsInput) (*ParentsMeta, error) {
	if parents == nil {
		return nil, nil
	}
	mother, err := s.parentMeta(ctx, parents.Mother)
	if err != nil {
		return nil, err
	}
	father, err := s.parentMeta(ctx, parents.Father)
	if err != nil {
		return nil, err
	}
	return &ParentsMeta{Mother: mother, Father: father}, nil
}

func (s *service) parentMeta(ctx context.Context, parent ParentInput) (astro.ParentMeta, error) {
	location, err := s.resolver.Resolve(ctx, parent.Location)
	if err != nil {
		return astro.ParentMeta{}, err
	}
	tz, err := location.TZ()
	if err != nil {
		return astro.ParentMeta{}, apperrors.Wrap(apperrors.CodeLocationError, "unknown timezone "+location.Timezone, err)
	}
	birth, err := parseLocalDateTime(parent.DateOfBirth, parent.TimeOfBirth, tz)
	if err != nil {
		return astro.ParentMeta{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			"parent birth datetime must be YYYY-MM-DD and HH:MM", err)
	}
	return s.calc.ComputeParentMeta(birth, location), nil
}

// parseLocalDateTime accepts HH:MM or HH:MM:SS times.
func parseLocalDateTime(dateStr, timeStr string, tz *time.Location) (time.Time, error) {
	if len(timeStr) == 5 {
		timeStr += ":00"
	}
	return time.ParseInLocation("2006-01-02 15:04:05", dateStr+" "+timeStr, tz)
}

// suggestionKey derives the deterministic cache key for a request.
func suggestionKey(req Request) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
