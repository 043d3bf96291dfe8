package model

// ScheduledTask is one ranked entry in a workload snapshot.
type ScheduledTask struct {
	Task            Task
	CumulativeHours float64 // Running effort total up to and including this task
	AtRisk          bool    // True for every task from the capacity crossing onward
}

// WorkloadSnapshot is a point-in-time aggregate of a task set against a
// daily capacity budget. Derived, never persisted; recomputed per pass.
type WorkloadSnapshot struct {
	TotalTasks          int
	CountsByPriority    map[PriorityLevel]int
	DueToday            int
	TotalEstimatedHours float64
	DailyCapacityHours  float64
	Overflow            bool // True when cumulative effort exceeds capacity
	Entries             []ScheduledTask
	Recommendations     []string
}
