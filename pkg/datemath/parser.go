package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months" and "within X days/weeks/months"
	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "within ") {
		return p.ParseDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

var durationRe = regexp.MustCompile(`(\d+)\s+(day|days|week|weeks|month|months)`)

// ParseDuration handles patterns like "in 3 days", "within 2 weeks", "in 1 month".
// Month arithmetic is calendar-aware and clamps the day-of-month (see AddMonthsClamped).
func (p *Parser) ParseDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := durationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(p.AddMonthsClamped(baseTime, amount)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekday maps a weekday name to a time.Weekday.
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := ParseWeekday(dayName)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	return p.UpcomingWeekday(baseTime, targetWeekday), nil
}

// UpcomingWeekday returns the next occurrence of target strictly after
// baseTime's day: if baseTime already falls on target, the result is 7 days out.
func (p *Parser) UpcomingWeekday(baseTime time.Time, target time.Weekday) time.Time {
	daysUntil := (int(target) - int(baseTime.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// AddMonthsClamped adds calendar months preserving the day-of-month, clamping
// to the last valid day when the target month is shorter (Jan 31 +1 → Feb 28/29,
// never Mar 2/3 as plain AddDate would give).
func (p *Parser) AddMonthsClamped(baseTime time.Time, months int) time.Time {
	t := baseTime.In(p.location)
	year, month, day := t.Date()

	first := time.Date(year, month, 1, 0, 0, 0, 0, p.location).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), 0, p.location)
}

// EndOfMonth returns midnight on the last day of baseTime's month.
func (p *Parser) EndOfMonth(baseTime time.Time) time.Time {
	t := baseTime.In(p.location)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
	return first.AddDate(0, 1, -1)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At combines the calendar day of t with a wall-clock time.
func (p *Parser) At(t time.Time, hour, minute int) time.Time {
	d := p.StartOfDay(t)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// literalLayouts are the date shapes accepted by ParseLiteralDate, most
// specific first. Year-less layouts resolve against the base time's year.
var literalLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"1/2/2006",
	"1-2-2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2",
	"Jan 2",
	"2 January",
	"2 Jan",
}

var ordinalRe = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)`)

// ParseLiteralDate parses an explicit date string ("March 3", "03/15/2026",
// "June 1st, 2026"). Ordinal suffixes and an "of" between day and month are
// tolerated. Year-less dates take the base year; if that date has already
// passed relative to baseTime, it rolls to the next year.
func (p *Parser) ParseLiteralDate(text string, baseTime time.Time) (time.Time, error) {
	cleaned := ordinalRe.ReplaceAllString(strings.TrimSpace(text), "$1")
	cleaned = strings.ReplaceAll(cleaned, " of ", " ")
	cleaned = strings.Trim(cleaned, " .,;")

	for _, layout := range literalLayouts {
		t, err := time.ParseInLocation(layout, cleaned, p.location)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(baseTime.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
			if t.Before(p.StartOfDay(baseTime)) {
				t = t.AddDate(1, 0, 0)
			}
		}
		return p.StartOfDay(t), nil
	}

	return baseTime, fmt.Errorf("unrecognized date: %q", text)
}

var (
	timeKitchenRe  = regexp.MustCompile(`(?i)\b(0?[1-9]|1[0-2]):([0-5][0-9])\s*(am|pm)\b`)
	timeMilitaryRe = regexp.MustCompile(`\b([01]?[0-9]|2[0-3]):([0-5][0-9])\b`)
	timeHourOnlyRe = regexp.MustCompile(`(?i)\b(0?[1-9]|1[0-2])\s*(am|pm)\b`)
)

// ParseClockTime extracts an explicit time-of-day from text.
// Accepted shapes: "3:30 pm", "15:45", "9am". Returns ok=false when no
// time is present.
func (p *Parser) ParseClockTime(text string) (hour, minute int, ok bool) {
	if m := timeKitchenRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		return meridiem(hour, m[3]), minute, true
	}
	if m := timeMilitaryRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		return hour, minute, true
	}
	if m := timeHourOnlyRe.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		return meridiem(hour, m[2]), 0, true
	}
	return 0, 0, false
}

func meridiem(hour int, suffix string) int {
	switch strings.ToLower(suffix) {
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	case "am":
		if hour == 12 {
			return 0
		}
	}
	return hour
}
