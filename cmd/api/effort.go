package main

import (
	"inbox-workload/internal/model"
)

// effortHoursByLevel converts the string-keyed config table into the
// scheduler's typed one, dropping unknown tier names.
func effortHoursByLevel(raw map[string]float64) map[model.PriorityLevel]float64 {
	out := make(map[model.PriorityLevel]float64, len(raw))
	for tier, hours := range raw {
		switch level := model.PriorityLevel(tier); level {
		case model.PriorityCritical, model.PriorityHigh, model.PriorityMedium, model.PriorityLow, model.PriorityOptional:
			out[level] = hours
		}
	}
	return out
}
