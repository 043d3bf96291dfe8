package workload

import (
	"time"

	"inbox-workload/internal/model"
)

// AnalyzeInput is the input for single-message analysis.
type AnalyzeInput struct {
	Message model.Message
}

// AnalyzeOutput is the result of single-message analysis.
type AnalyzeOutput struct {
	Tasks    []model.Task
	Snapshot model.WorkloadSnapshot
}

// AnalyzeBatchInput is the input for multi-message analysis.
type AnalyzeBatchInput struct {
	Messages []model.Message

	// ReferenceTime anchors the combined snapshot's "due today" count.
	// Zero means now. Each message's deadlines still resolve against its
	// own received-at time.
	ReferenceTime time.Time
}

// AnalyzeBatchOutput is the result of multi-message analysis. Tasks are
// ordered by message position, then extraction order within the message.
type AnalyzeBatchOutput struct {
	Tasks    []model.Task
	Snapshot model.WorkloadSnapshot
}

// SnapshotInput carries caller-held tasks to rank and account.
type SnapshotInput struct {
	Tasks []model.Task

	// ReferenceTime anchors the "due today" count. Zero means now.
	ReferenceTime time.Time
}

// SnapshotOutput is the result of a scheduling pass.
type SnapshotOutput struct {
	Snapshot model.WorkloadSnapshot
}
