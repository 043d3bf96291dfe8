package scheduler

import (
	"sort"
	"time"

	"inbox-workload/internal/model"
)

// Config tunes capacity accounting and recommendations.
type Config struct {
	// DailyCapacityHours is the bounded daily time budget.
	DailyCapacityHours float64

	// EffortHours charges per priority tier; missing tiers take the
	// built-in defaults.
	EffortHours map[model.PriorityLevel]float64

	// MaxCriticalPerDay triggers a clustering recommendation when more
	// critical tasks than this share one due date.
	MaxCriticalPerDay int

	// SenderDominanceShare triggers a dominance recommendation when one
	// sender owns more than this share of the critical tier.
	SenderDominanceShare float64
}

// defaultEffortHours is the built-in per-tier effort table.
var defaultEffortHours = map[model.PriorityLevel]float64{
	model.PriorityCritical: 2.0,
	model.PriorityHigh:     1.5,
	model.PriorityMedium:   1.0,
	model.PriorityLow:      0.5,
	model.PriorityOptional: 0.25,
}

// Scheduler ranks tasks and accounts them against the daily capacity
// budget. All methods are pure functions of their inputs.
type Scheduler struct {
	cfg Config
}

// New creates a Scheduler.
func New(cfg Config) *Scheduler {
	return &Scheduler{cfg: cfg}
}

// EffortFor returns the effort hours charged for a priority tier.
func (s *Scheduler) EffortFor(p model.PriorityLevel) float64 {
	if h, ok := s.cfg.EffortHours[p]; ok {
		return h
	}
	if h, ok := defaultEffortHours[p]; ok {
		return h
	}
	return defaultEffortHours[model.PriorityMedium]
}

// Rank returns tasks in scheduling order: priority tier first, earlier
// deadlines second (undated tasks after all dated ones), original
// extraction order as the final tie-break. The sort is stable, so equal
// tasks keep their insertion order and repeated calls agree byte for byte.
func (s *Scheduler) Rank(tasks []model.Task) []model.Task {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ri, rj := ranked[i].Priority.Rank(), ranked[j].Priority.Rank(); ri != rj {
			return ri > rj
		}

		di, dj := ranked[i].Deadline, ranked[j].Deadline
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		return di.Due.Before(dj.Due)
	})

	return ranked
}

// BuildSnapshot aggregates tasks into a workload snapshot against the
// configured daily capacity. Capacity overflow is advisory: the first
// ranked task whose cumulative effort exceeds the budget starts the
// at-risk suffix; nothing is dropped.
func (s *Scheduler) BuildSnapshot(tasks []model.Task, referenceTime time.Time) model.WorkloadSnapshot {
	ranked := s.Rank(tasks)

	snap := model.WorkloadSnapshot{
		TotalTasks:         len(ranked),
		CountsByPriority:   make(map[model.PriorityLevel]int),
		DailyCapacityHours: s.cfg.DailyCapacityHours,
		Entries:            make([]model.ScheduledTask, 0, len(ranked)),
	}

	var cumulative float64
	for _, t := range ranked {
		effort := t.EstimatedEffortHours
		if effort <= 0 {
			effort = s.EffortFor(t.Priority)
		}
		cumulative += effort

		snap.CountsByPriority[t.Priority]++
		snap.TotalEstimatedHours += effort
		if t.Deadline != nil && sameDay(t.Deadline.Due, referenceTime) {
			snap.DueToday++
		}

		atRisk := cumulative > s.cfg.DailyCapacityHours
		if atRisk {
			snap.Overflow = true
		}
		snap.Entries = append(snap.Entries, model.ScheduledTask{
			Task:            t,
			CumulativeHours: cumulative,
			AtRisk:          atRisk,
		})
	}

	snap.Recommendations = s.recommend(snap)
	return snap
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
