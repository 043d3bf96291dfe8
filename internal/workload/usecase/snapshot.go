package usecase

import (
	"context"
	"time"

	"inbox-workload/internal/model"
	"inbox-workload/internal/workload"
)

// Snapshot ranks caller-held tasks without re-running extraction. Tasks
// arriving from storage or external callers may carry blank priorities or
// zero effort estimates; both are normalized before scheduling so the
// capacity math stays consistent with analyzed tasks.
func (uc *implUseCase) Snapshot(ctx context.Context, input workload.SnapshotInput) (workload.SnapshotOutput, error) {
	ref := input.ReferenceTime
	if ref.IsZero() {
		ref = time.Now()
	}

	tasks := input.Tasks
	for i := range tasks {
		if tasks[i].Priority == "" {
			tasks[i].Priority = model.PriorityMedium
		}
		if tasks[i].EstimatedEffortHours <= 0 {
			tasks[i].EstimatedEffortHours = uc.scheduler.EffortFor(tasks[i].Priority)
		}
	}

	uc.l.Infof(ctx, "Snapshot: tasks=%d", len(tasks))

	return workload.SnapshotOutput{
		Snapshot: uc.scheduler.BuildSnapshot(tasks, ref),
	}, nil
}
