package priority

import (
	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
)

// Config tunes priority classification.
type Config struct {
	// SenderWeights is the read-only sender importance table (0..1).
	SenderWeights map[string]float64

	// SenderHighThreshold is the weight at or above which a sender's
	// tasks classify as high when no urgency language is present.
	SenderHighThreshold float64
}

// Classifier scores task urgency from contextual language, falling back to
// sender importance. It never fails: absence of information resolves to
// the documented default (medium).
type Classifier struct {
	lib *patterns.Library
	cfg Config
}

// New creates a Classifier.
func New(lib *patterns.Library, cfg Config) *Classifier {
	return &Classifier{lib: lib, cfg: cfg}
}

// Classify returns the priority tier for a task given the text surrounding
// its clause. Indicator tiers are checked critical→low and the first match
// wins; tier order, not match count, is the tie-break.
func (c *Classifier) Classify(contextText, sender string) model.PriorityLevel {
	if tier, ok := c.lib.UrgencyTier(contextText); ok {
		return tier
	}

	if c.cfg.SenderWeights[sender] >= c.cfg.SenderHighThreshold && c.cfg.SenderHighThreshold > 0 {
		return model.PriorityHigh
	}

	return model.PriorityMedium
}
