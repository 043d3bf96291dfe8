package scheduler

import (
	"fmt"
	"sort"

	"inbox-workload/internal/model"
)

// recommend derives advisory strings from a finished snapshot. Each
// recommendation is a pure function of the snapshot; output order is fixed
// (overflow, critical-day clustering, sender dominance) and within a rule
// deterministic, so repeated passes over the same tasks agree.
func (s *Scheduler) recommend(snap model.WorkloadSnapshot) []string {
	var recs []string

	if snap.Overflow {
		atRisk := 0
		for _, e := range snap.Entries {
			if e.AtRisk {
				atRisk++
			}
		}
		recs = append(recs, fmt.Sprintf(
			"Estimated workload of %.2f hours exceeds the daily capacity of %.2f hours; %d task(s) are at risk of overflow.",
			snap.TotalEstimatedHours, snap.DailyCapacityHours, atRisk))
	}

	recs = append(recs, s.criticalClusterRecs(snap)...)
	recs = append(recs, s.senderDominanceRecs(snap)...)

	return recs
}

// criticalClusterRecs flags days carrying more critical tasks than the
// configured limit.
func (s *Scheduler) criticalClusterRecs(snap model.WorkloadSnapshot) []string {
	if s.cfg.MaxCriticalPerDay <= 0 {
		return nil
	}

	perDay := make(map[string]int)
	for _, e := range snap.Entries {
		if e.Task.Priority != model.PriorityCritical || e.Task.Deadline == nil {
			continue
		}
		perDay[e.Task.Deadline.Due.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(perDay))
	for day, n := range perDay {
		if n > s.cfg.MaxCriticalPerDay {
			days = append(days, day)
		}
	}
	sort.Strings(days)

	recs := make([]string, 0, len(days))
	for _, day := range days {
		recs = append(recs, fmt.Sprintf(
			"%d critical tasks are due on %s; consider renegotiating at least one deadline.",
			perDay[day], day))
	}
	return recs
}

// senderDominanceRecs flags a sender whose tasks dominate the critical tier.
// A single critical task is never reported: dominance needs at least two.
func (s *Scheduler) senderDominanceRecs(snap model.WorkloadSnapshot) []string {
	if s.cfg.SenderDominanceShare <= 0 {
		return nil
	}

	totalCritical := snap.CountsByPriority[model.PriorityCritical]
	if totalCritical < 2 {
		return nil
	}

	perSender := make(map[string]int)
	for _, e := range snap.Entries {
		if e.Task.Priority == model.PriorityCritical {
			perSender[e.Task.Sender]++
		}
	}

	senders := make([]string, 0, len(perSender))
	for sender := range perSender {
		senders = append(senders, sender)
	}
	sort.Strings(senders)

	var recs []string
	for _, sender := range senders {
		share := float64(perSender[sender]) / float64(totalCritical)
		if share > s.cfg.SenderDominanceShare {
			recs = append(recs, fmt.Sprintf(
				"%s accounts for %d of %d critical tasks; consider batching replies or escalating.",
				sender, perSender[sender], totalCritical))
		}
	}
	return recs
}
