package muhurat

import (
	"context"
	"time"

	"github.com/vedicworks/muhurat-api/internal/domain/astro"
)

// ParentInput carries one parent's birth data.
type ParentInput struct {
	Name        string              `json:"name" binding:"required"`
	DateOfBirth string              `json:"dateOfBirth" binding:"required"`
	TimeOfBirth string              `json:"timeOfBirth" binding:"required"`
	Location    astro.LocationInput `json:"location"`
}

// ParentsInput pairs both parents; interplay scoring needs the two charts.
type ParentsInput struct {
	Mother ParentInput `json:"mother" binding:"required"`
	Father ParentInput `json:"father" binding:"required"`
}

// Request is the suggestion payload accepted by the service.
type Request struct {
	StartDate         string              `json:"startDate" binding:"required"`
	EndDate           string              `json:"endDate" binding:"required"`
	Location          astro.LocationInput `json:"location"`
	MaxResults        int                 `json:"maxResults"`
	QualitiesText     string              `json:"qualitiesText,omitempty"`
	QualitiesSelected []string            `json:"qualitiesSelected,omitempty"`
	QualitiesPriority []string            `json:"qualitiesPriority,omitempty"`
	Parents           *ParentsInput       `json:"parents,omitempty"`
}

// ParentsDasha holds both parents' mahadasha lords at a candidate instant.
type ParentsDasha struct {
	Mother astro.Planet `json:"mother"`
	Father astro.Planet `json:"father"`
}

// ParentsMeta bundles the per-request parent chart derivations.
type ParentsMeta struct {
	Mother astro.ParentMeta `json:"mother"`
	Father astro.ParentMeta `json:"father"`
}

// Candidate is one ranked muhurat slot.
type Candidate struct {
	Date string `json:"date"`
	Time string `json:"time"`

	Nakshatra        astro.Nakshatra `json:"nakshatra"`
	Pada             int             `json:"pada"`
	Rashi            astro.Rashi     `json:"rashi"`
	Tithi            astro.Tithi     `json:"tithi"`
	Yoga             astro.Yoga      `json:"yoga"`
	Karana           astro.Karana    `json:"karana"`
	Lagna            astro.Rashi     `json:"lagna"`
	LagnaLord        astro.Planet    `json:"lagnaLord"`
	EighthHouseRashi astro.Rashi     `json:"eighthHouseRashi"`
	JupiterRashi     astro.Rashi     `json:"jupiterRashi"`
	JupiterStrong    bool            `json:"jupiterStrong"`
	DashaLord        astro.Planet    `json:"dashaLord"`
	NinthLord        astro.Planet    `json:"ninthLord"`
	FourthLord       astro.Planet    `json:"fourthLord"`
	NinthStrength    int             `json:"ninthStrength"`
	FourthStrength   int             `json:"fourthStrength"`

	ParentsDasha         *ParentsDasha `json:"parentsDasha,omitempty"`
	RecommendedSyllables []string      `json:"recommendedSyllables,omitempty"`

	Score int `json:"score"`
}

// Response is returned to the HTTP transport.
type Response struct {
	Results     []Candidate `json:"results"`
	TraitsUsed  []Trait     `json:"traitsUsed"`
	WeightsUsed Weights     `json:"weightsUsed"`
	Cached      bool        `json:"cached,omitempty"`
}

// Config drives the scanner bounds. All values are read-only after wiring.
type Config struct {
	SlotMinutes       int
	DayStartHour      int
	DayEndHour        int
	HardCapMultiplier int
	MinScore          int
	MaxRangeDays      int
	DefaultResults    int
	CacheTTL          time.Duration
}

// Store caches full suggestion responses keyed by a canonical request hash.
type Store interface {
	GetSuggestion(ctx context.Context, key string) (Response, bool, error)
	SaveSuggestion(ctx context.Context, key string, resp Response, ttl time.Duration) error
}

// Service exposes the muhurat suggestion capability.
type Service interface {
	Suggest(ctx context.Context, req Request) (Response, error)
}
