package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	// Market data resolution.
	RapidAPIKey     string // JSearch credentials; empty = live lookups disabled
	JSearchBaseURL  string
	UseLiveMarket   bool // prefer JSearch over the static role table
	MaxSearchTries  int  // query variants per role lookup
	MinPostingsKeep int  // postings needed before a variant result is accepted
	MaxPostingsScan int  // postings analyzed per result

	// Demand level thresholds (posting counts).
	DemandVeryHigh int
	DemandHigh     int
	DemandMedium   int

	// CV extraction.
	NERServiceURL    string // entity recognizer HTTP endpoint; empty = regex-only
	NERServiceSecret string
	MinSectionsFound int // extraction warning below this
	MaxEvidenceChars int // implicit skill evidence snippet length

	// Seniority math. Zero = resolved to the wall-clock year at Init.
	CurrentYear int

	FetchTimeout         time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	ReportDir            string // default sink for rendered reports
	HTTPClient           *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (cvparse, skills, market, report).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.CurrentYear == 0 {
		c.CurrentYear = time.Now().Year()
	}
	if c.MaxSearchTries <= 0 {
		c.MaxSearchTries = 5
	}
	if c.MinPostingsKeep <= 0 {
		c.MinPostingsKeep = 10
	}
	if c.MaxPostingsScan <= 0 {
		c.MaxPostingsScan = 20
	}
	if c.DemandVeryHigh <= 0 {
		c.DemandVeryHigh = 50
	}
	if c.DemandHigh <= 0 {
		c.DemandHigh = 20
	}
	if c.DemandMedium <= 0 {
		c.DemandMedium = 10
	}
	if c.MinSectionsFound <= 0 {
		c.MinSectionsFound = 3
	}
	if c.MaxEvidenceChars <= 0 {
		c.MaxEvidenceChars = 100
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}
	cfg = c
	Cfg = &cfg
}
