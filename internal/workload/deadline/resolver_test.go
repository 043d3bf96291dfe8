package deadline

import (
	"testing"
	"time"

	"inbox-workload/internal/patterns"
	"inbox-workload/pkg/datemath"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	return New(patterns.NewLibrary(), dates, Config{
		EndOfBusinessHour:   17,
		DefaultDeadlineDays: 7,
		WeekDeadlineWeekday: time.Friday,
		NextWeekWeekday:     time.Wednesday,
	})
}

func TestResolve(t *testing.T) {
	// Monday morning.
	ref := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		text       string
		wantDue    time.Time
		wantSource string
	}{
		{
			name:       "By tomorrow",
			text:       "Please send the report by tomorrow.",
			wantDue:    time.Date(2026, 3, 3, 17, 0, 0, 0, time.UTC),
			wantSource: "tomorrow",
		},
		{
			name:       "Bare today",
			text:       "We need this today or the release slips.",
			wantDue:    time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC),
			wantSource: "today",
		},
		{
			name:       "This week anchors to Friday",
			text:       "Can you wrap this up this week.",
			wantDue:    time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC),
			wantSource: "this week",
		},
		{
			name:       "Next week anchors to Wednesday",
			text:       "Let's plan to review next week.",
			wantDue:    time.Date(2026, 3, 4, 17, 0, 0, 0, time.UTC),
			wantSource: "next week",
		},
		{
			name:       "Within N days",
			text:       "The audit must be closed within 3 days.",
			wantDue:    time.Date(2026, 3, 5, 17, 0, 0, 0, time.UTC),
			wantSource: "within 3 days",
		},
		{
			name:       "Named weekday",
			text:       "The deadline by next Friday, so plan ahead.",
			wantDue:    time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC),
			wantSource: "next Friday",
		},
		{
			name:       "Literal month date",
			text:       "Please submit by March 15.",
			wantDue:    time.Date(2026, 3, 15, 17, 0, 0, 0, time.UTC),
			wantSource: "March 15",
		},
		{
			name:       "Explicit clock time overrides end of business",
			text:       "It is due by tomorrow at 3:30 pm.",
			wantDue:    time.Date(2026, 3, 3, 15, 30, 0, 0, time.UTC),
			wantSource: "tomorrow at 3:30 pm",
		},
		{
			name:       "No phrase falls back to the default horizon",
			text:       "Thanks for the update on the migration.",
			wantDue:    time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC),
			wantSource: "",
		},
	}

	r := newTestResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.text, tt.text, ref)
			if !got.Due.Equal(tt.wantDue) {
				t.Errorf("Due = %v, want %v", got.Due, tt.wantDue)
			}
			if got.SourceText != tt.wantSource {
				t.Errorf("SourceText = %q, want %q", got.SourceText, tt.wantSource)
			}
		})
	}
}

func TestResolve_WeekdayOnItsOwnDay(t *testing.T) {
	r := newTestResolver(t)

	// Asking for Friday on a Friday means the following week, never today.
	ref := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	got := r.Resolve("finish this by next Friday.", "finish this by next Friday.", ref)

	want := time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC)
	if !got.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", got.Due, want)
	}
}

func TestResolve_ContextWindowPreferred(t *testing.T) {
	r := newTestResolver(t)
	ref := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	window := "send the numbers by tomorrow"
	full := "The offsite is next week. Please send the numbers by tomorrow."

	got := r.Resolve(window, full, ref)
	if got.SourceText != "tomorrow" {
		t.Errorf("SourceText = %q, want %q (window phrase wins)", got.SourceText, "tomorrow")
	}
}

func TestResolve_FullTextFallbackWhenWindowSilent(t *testing.T) {
	r := newTestResolver(t)
	ref := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	got := r.Resolve("update the roadmap", "Update the roadmap. Everything is needed by tomorrow.", ref)
	if got.SourceText != "tomorrow" {
		t.Errorf("SourceText = %q, want %q (full text scanned)", got.SourceText, "tomorrow")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := newTestResolver(t)
	ref := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	text := "Please send the report by tomorrow."

	first := r.Resolve(text, text, ref)
	second := r.Resolve(text, text, ref)
	if !first.Due.Equal(second.Due) || first.SourceText != second.SourceText {
		t.Errorf("Resolve() not deterministic: %+v vs %+v", first, second)
	}
}
