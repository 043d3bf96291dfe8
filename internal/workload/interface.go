package workload

import "context"

// UseCase is the business logic boundary of the workload domain:
// free-text messages in, enriched tasks and a capacity snapshot out.
type UseCase interface {
	// Analyze runs the full pipeline over one message.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)

	// AnalyzeBatch runs the pipeline over many messages, one independent
	// pass per message, and builds a single combined snapshot.
	AnalyzeBatch(ctx context.Context, input AnalyzeBatchInput) (AnalyzeBatchOutput, error)

	// Snapshot ranks caller-held tasks against the daily capacity budget
	// without re-running extraction.
	Snapshot(ctx context.Context, input SnapshotInput) (SnapshotOutput, error)
}
