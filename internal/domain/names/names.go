package names

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

const (
	defaultSuggestions = 10
	maxSuggestions     = 20
)

// BabyDetails carries the birth data the syllable lookup needs.
type BabyDetails struct {
	Gender      string              `json:"gender" binding:"required"`
	DateOfBirth string              `json:"dateOfBirth" binding:"required"`
	TimeOfBirth string              `json:"timeOfBirth" binding:"required"`
	Location    astro.LocationInput `json:"location"`
}

// Preferences narrow the candidate pool.
type Preferences struct {
	StartingLetters []string `json:"startingLetters,omitempty"`
	Origins         []string `json:"origins" binding:"required"`
	AvoidNames      []string `json:"avoidNames,omitempty"`
	Count           int      `json:"count,omitempty"`
}

// Request is the name suggestion payload.
type Request struct {
	Baby        BabyDetails `json:"babyDetails" binding:"required"`
	Preferences Preferences `json:"preferences" binding:"required"`
}

// Suggestion is one ranked name.
type Suggestion struct {
	Rank               int    `json:"rank"`
	Name               string `json:"name"`
	Gender             string `json:"gender"`
	Meaning            string `json:"meaning"`
	Origin             string `json:"origin"`
	CompatibilityScore int    `json:"compatibilityScore"`
	NakshatraMatch     bool   `json:"nakshatraMatch"`
	SyllableMatch      string `json:"syllableMatch"`
	Length             int    `json:"length"`
	TraditionalScore   int    `json:"traditionalScore"`
}

// CalculationDetails reports the birth factors driving the syllable lookup.
type CalculationDetails struct {
	Nakshatra            astro.Nakshatra `json:"nakshatra"`
	Pada                 int             `json:"pada"`
	Rashi                astro.Rashi     `json:"rashi"`
	RecommendedSyllables []string        `json:"recommendedSyllables"`
}

// Response wraps the ranked suggestions.
type Response struct {
	Details     CalculationDetails `json:"calculationDetails"`
	Suggestions []Suggestion       `json:"suggestions"`
}

// Service exposes the name suggestion capability.
type Service interface {
	Suggest(ctx context.Context, req Request) (Response, error)
}

// poolEntry is one fixed candidate. The pool is a placeholder until a real
// name corpus lands; the surrounding filtering, ranking and syllable
// matching are the production pipeline.
type poolEntry struct {
	name             string
	meaning          string
	origin           string
	traditionalScore int
}

var namePool = []poolEntry{
	{"Aarav", "Peaceful", "sanskrit", 7},
	{"Vivaan", "Full of life", "sanskrit", 6},
	{"Aditya", "Sun", "sanskrit", 8},
	{"Kabir", "Great", "hindi", 7},
	{"Kiara", "Bright", "modern_indian", 5},
}

type service struct {
	calc     *astro.Calculator
	resolver astro.LocationResolver
	logger   *slog.Logger
}

// NewService builds the name suggester on top of the shared chart calculator.
func NewService(calc *astro.Calculator, resolver astro.LocationResolver, logger *slog.Logger) Service {
	return &service{calc: calc, resolver: resolver, logger: logger.With("component", "names.service")}
}

func (s *service) Suggest(ctx context.Context, req Request) (Response, error) {
	if len(req.Preferences.Origins) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "at least one origin is required", nil)
	}
	count := req.Preferences.Count
	if count == 0 {
		count = defaultSuggestions
	}
	if count < 1 || count > maxSuggestions {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "count must be between 1 and 20", nil)
	}

	details, err := s.birthDetails(ctx, req.Baby)
	if err != nil {
		return Response{}, err
	}

	filtered := filterPool(req.Preferences)
	suggestions := make([]Suggestion, 0, count)
	for i := 0; i < count && len(filtered) > 0; i++ {
		entry := filtered[i%len(filtered)]
		match, syllable := syllableMatch(entry.name, details.RecommendedSyllables)
		suggestions = append(suggestions, Suggestion{
			Rank:               i + 1,
			Name:               entry.name,
			Gender:             req.Baby.Gender,
			Meaning:            entry.meaning,
			Origin:             entry.origin,
			CompatibilityScore: 95 - (i + 1),
			NakshatraMatch:     match,
			SyllableMatch:      syllable,
			Length:             len(entry.name),
			TraditionalScore:   entry.traditionalScore,
		})
	}

	s.logger.Info("name suggestions built", "count", len(suggestions), "nakshatra", details.Nakshatra)
	return Response{Details: details, Suggestions: suggestions}, nil
}

func (s *service) birthDetails(ctx context.Context, baby BabyDetails) (CalculationDetails, error) {
	location, err := s.resolver.Resolve(ctx, baby.Location)
	if err != nil {
		return CalculationDetails{}, err
	}
	tz, err := location.TZ()
	if err != nil {
		return CalculationDetails{}, apperrors.Wrap(apperrors.CodeLocationError, "unknown timezone "+location.Timezone, err)
	}

	timeStr := baby.TimeOfBirth
	if len(timeStr) == 5 {
		timeStr += ":00"
	}
	birth, err := parseBirth(baby.DateOfBirth, timeStr, tz)
	if err != nil {
		return CalculationDetails{}, apperrors.Wrap(apperrors.CodeInvalidInput,
			"birth datetime must be YYYY-MM-DD and HH:MM", err)
	}

	fs := s.calc.Compute(birth, location)
	return CalculationDetails{
		Nakshatra:            fs.Nakshatra,
		Pada:                 fs.Pada,
		Rashi:                fs.Rashi,
		RecommendedSyllables: astro.SyllablesFor(fs.Nakshatra, fs.Pada),
	}, nil
}

func parseBirth(dateStr, timeStr string, tz *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", dateStr+" "+timeStr, tz)
}

func filterPool(prefs Preferences) []poolEntry {
	origins := make(map[string]bool, len(prefs.Origins))
	for _, o := range prefs.Origins {
		origins[strings.ToLower(strings.TrimSpace(o))] = true
	}
	avoid := make(map[string]bool, len(prefs.AvoidNames))
	for _, n := range prefs.AvoidNames {
		avoid[strings.ToLower(strings.TrimSpace(n))] = true
	}

	out := make([]poolEntry, 0, len(namePool))
	for _, entry := range namePool {
		if !origins[entry.origin] || avoid[strings.ToLower(entry.name)] {
			continue
		}
		if len(prefs.StartingLetters) > 0 && !startsWithAny(entry.name, prefs.StartingLetters) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func startsWithAny(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// syllableMatch reports whether the name opens with one of the birth
// nakshatra's naming syllables, returning the matched syllable or the first
// recommended one as fallback.
func syllableMatch(name string, syllables []string) (bool, string) {
	lower := strings.ToLower(name)
	for _, syl := range syllables {
		if strings.HasPrefix(lower, strings.ToLower(syl)) {
			return true, syl
		}
	}
	if len(syllables) > 0 {
		return false, syllables[0]
	}
	return false, ""
}
