package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PriorityLevel orders task urgency.
type PriorityLevel string

const (
	PriorityCritical PriorityLevel = "critical"
	PriorityHigh     PriorityLevel = "high"
	PriorityMedium   PriorityLevel = "medium"
	PriorityLow      PriorityLevel = "low"
	PriorityOptional PriorityLevel = "optional"
)

// Rank returns the numeric urgency of a priority level, higher is more urgent.
// Unknown levels rank as medium.
func (p PriorityLevel) Rank() int {
	switch p {
	case PriorityCritical:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	case PriorityOptional:
		return 1
	}
	return 3
}

// ParsePriority maps a string to a PriorityLevel, defaulting to medium.
func ParsePriority(s string) PriorityLevel {
	switch PriorityLevel(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityCritical:
		return PriorityCritical
	case PriorityHigh:
		return PriorityHigh
	case PriorityMedium:
		return PriorityMedium
	case PriorityLow:
		return PriorityLow
	case PriorityOptional:
		return PriorityOptional
	}
	return PriorityMedium
}

// TaskStatus is the task lifecycle state. The core always emits pending;
// status is mutated only by the scheduler-facing consumer.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusCancelled  TaskStatus = "cancelled"
)

// Deadline is a resolved calendar date/time plus the phrase it came from.
// Due is always concrete: unresolvable phrases fall back to a default
// rather than leaving it unset. SourceText is kept for audit and may be
// empty when no deadline phrase was found at all.
type Deadline struct {
	Date       time.Time // Midnight on the resolved calendar day
	Time       string    // Resolved wall-clock time, "HH:MM"
	Due        time.Time // Date and Time combined
	SourceText string    // Original matched phrase, possibly empty
}

// Task is a unit of required follow-up action extracted from one message.
// Identity is (SourceMessageID, SequenceIndex); UID is a deterministic
// convenience id derived from the pair. Tasks are created once at
// extraction time and never mutated by the enrichment stages.
type Task struct {
	SourceMessageID      string
	SequenceIndex        int
	UID                  string
	Description          string
	Sender               string
	ReceivedAt           time.Time
	Deadline             *Deadline // nil until resolved; nil in output only if resolution was skipped
	Priority             PriorityLevel
	Status               TaskStatus
	EstimatedEffortHours float64
	ProjectTag           string   // Optional
	Dependencies         []string // Textual, best-effort; not guaranteed resolvable
}

// taskNamespace seeds deterministic task UIDs (DNS namespace, RFC 4122).
var taskNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// NewTaskUID derives a stable UID from a task's identity so repeated
// extraction of the same message yields identical ids.
func NewTaskUID(messageID string, sequenceIndex int) string {
	return uuid.NewSHA1(taskNamespace, fmt.Appendf(nil, "%s#%d", messageID, sequenceIndex)).String()
}
