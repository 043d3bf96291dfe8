package deadline

import (
	"fmt"
	"regexp"
	"time"

	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
	"inbox-workload/pkg/datemath"
)

// Config tunes deadline resolution.
type Config struct {
	// EndOfBusinessHour is the default deadline hour (17 → 17:00) applied
	// when a phrase carries no explicit time.
	EndOfBusinessHour int

	// DefaultDeadlineDays is the fallback horizon when no phrase resolves.
	DefaultDeadlineDays int

	// WeekDeadlineWeekday anchors "this week", conventionally Friday.
	WeekDeadlineWeekday time.Weekday

	// NextWeekWeekday anchors "next week", conventionally Wednesday
	// (mid-week of the following week).
	NextWeekWeekday time.Weekday
}

// Resolver converts free-text deadline phrases into concrete deadlines.
// Resolve is deterministic: the same inputs always produce the same
// Deadline, and it never fails — unresolvable phrases get the default
// horizon with the raw text preserved for audit.
type Resolver struct {
	lib   *patterns.Library
	dates *datemath.Parser
	cfg   Config
}

// New creates a Resolver.
func New(lib *patterns.Library, dates *datemath.Parser, cfg Config) *Resolver {
	return &Resolver{lib: lib, dates: dates, cfg: cfg}
}

// Phrase classification shapes, checked in source order.
var (
	todayRe       = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\btomorrow\b`)
	thisWeekRe    = regexp.MustCompile(`(?i)\bthis\s+week\b`)
	nextWeekRe    = regexp.MustCompile(`(?i)\bnext\s+week\b`)
	thisMonthRe   = regexp.MustCompile(`(?i)\bthis\s+month\b`)
	durationRe    = regexp.MustCompile(`(?i)\b(\d+)\s+(day|days|week|weeks|month|months)\b`)
	someWeekdayRe = regexp.MustCompile(`(?i)\b(?:this\s+|next\s+)?(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`)
)

// Resolve finds a deadline phrase near the task clause and converts it to a
// concrete date and time. contextText is the window around the clause;
// fullText is searched when the window yields nothing. referenceTime anchors
// all relative terms.
func (r *Resolver) Resolve(contextText, fullText string, referenceTime time.Time) model.Deadline {
	match, ok := r.lib.FindDeadline(contextText)
	if !ok {
		match, ok = r.lib.FindDeadline(fullText)
	}
	if !ok {
		return r.fallback("", referenceTime)
	}

	day, resolved := r.classify(match.Phrase, referenceTime)
	if !resolved {
		return r.fallback(match.Phrase, referenceTime)
	}

	hour, minute := r.cfg.EndOfBusinessHour, 0
	if h, m, hasTime := r.dates.ParseClockTime(match.Phrase); hasTime {
		hour, minute = h, m
	}

	return r.deadline(day, hour, minute, match.Phrase)
}

// classify resolves a deadline phrase to a calendar day. Checks run in a
// fixed order: relative terms first, then numeric timeframes, then named
// weekdays, then literal dates.
func (r *Resolver) classify(phrase string, ref time.Time) (time.Time, bool) {
	switch {
	case todayRe.MatchString(phrase):
		return r.dates.StartOfDay(ref), true
	case tomorrowRe.MatchString(phrase):
		return r.dates.StartOfDay(ref.AddDate(0, 0, 1)), true
	case thisWeekRe.MatchString(phrase):
		return r.dates.UpcomingWeekday(ref, r.cfg.WeekDeadlineWeekday), true
	case nextWeekRe.MatchString(phrase):
		return r.dates.UpcomingWeekday(ref, r.cfg.NextWeekWeekday), true
	case thisMonthRe.MatchString(phrase):
		return r.dates.EndOfMonth(ref), true
	}

	if durationRe.MatchString(phrase) {
		day, err := r.dates.ParseDuration("in "+durationRe.FindString(phrase), ref)
		if err == nil {
			return day, true
		}
	}

	if m := someWeekdayRe.FindStringSubmatch(phrase); m != nil {
		if wd, ok := datemath.ParseWeekday(m[1]); ok {
			return r.dates.UpcomingWeekday(ref, wd), true
		}
	}

	day, err := r.dates.ParseLiteralDate(phrase, ref)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// fallback is the documented default: the configured horizon out, end of
// business, with whatever raw text was matched preserved for audit.
func (r *Resolver) fallback(sourceText string, ref time.Time) model.Deadline {
	day := r.dates.StartOfDay(ref.AddDate(0, 0, r.cfg.DefaultDeadlineDays))
	return r.deadline(day, r.cfg.EndOfBusinessHour, 0, sourceText)
}

func (r *Resolver) deadline(day time.Time, hour, minute int, sourceText string) model.Deadline {
	return model.Deadline{
		Date:       r.dates.StartOfDay(day),
		Time:       fmt.Sprintf("%02d:%02d", hour, minute),
		Due:        r.dates.At(day, hour, minute),
		SourceText: sourceText,
	}
}
