package usecase

import (
	"context"
	"sync"
	"time"

	"inbox-workload/internal/model"
	"inbox-workload/internal/workload"
	"inbox-workload/internal/workload/extractor"
)

// Analyze runs extraction, deadline resolution, priority classification and
// scheduling over one message. Content never causes an error: a message
// with no action language simply yields zero tasks and an empty snapshot.
func (uc *implUseCase) Analyze(ctx context.Context, input workload.AnalyzeInput) (workload.AnalyzeOutput, error) {
	if input.Message.ID == "" {
		return workload.AnalyzeOutput{}, workload.ErrMissingMessageID
	}

	ref := referenceTime(input.Message)
	tasks := uc.enrich(ctx, input.Message, ref)

	uc.l.Infof(ctx, "Analyze: message=%s sender=%s tasks=%d", input.Message.ID, input.Message.Sender, len(tasks))

	return workload.AnalyzeOutput{
		Tasks:    tasks,
		Snapshot: uc.scheduler.BuildSnapshot(tasks, ref),
	}, nil
}

// AnalyzeBatch fans out one goroutine per message. The pipeline touches no
// cross-message state, so no locking is needed beyond the indexed result
// slice; output order follows input order regardless of completion order.
func (uc *implUseCase) AnalyzeBatch(ctx context.Context, input workload.AnalyzeBatchInput) (workload.AnalyzeBatchOutput, error) {
	if len(input.Messages) == 0 {
		return workload.AnalyzeBatchOutput{}, workload.ErrNoMessages
	}

	results := make([][]model.Task, len(input.Messages))

	var wg sync.WaitGroup
	for i, msg := range input.Messages {
		wg.Add(1)
		go func(i int, msg model.Message) {
			defer wg.Done()
			results[i] = uc.enrich(ctx, msg, referenceTime(msg))
		}(i, msg)
	}
	wg.Wait()

	var tasks []model.Task
	for _, r := range results {
		tasks = append(tasks, r...)
	}

	ref := input.ReferenceTime
	if ref.IsZero() {
		ref = time.Now()
	}

	uc.l.Infof(ctx, "AnalyzeBatch: messages=%d tasks=%d", len(input.Messages), len(tasks))

	return workload.AnalyzeBatchOutput{
		Tasks:    tasks,
		Snapshot: uc.scheduler.BuildSnapshot(tasks, ref),
	}, nil
}

// enrich extracts candidate tasks and completes each one independently:
// deadline and priority read only the original text, so their order does
// not matter, and the task is never touched again afterwards.
func (uc *implUseCase) enrich(ctx context.Context, msg model.Message, ref time.Time) []model.Task {
	tasks := uc.extractor.Extract(msg)
	if len(tasks) == 0 {
		return tasks
	}

	text := msg.Text()
	for i := range tasks {
		window := extractor.ContextWindow(text, tasks[i].Description, uc.contextRadius)
		scope := window
		if scope == "" {
			// Synthesized descriptions don't occur in the text; fall back
			// to scanning the whole message.
			scope = text
		}

		dl := uc.deadlines.Resolve(window, text, ref)
		tasks[i].Deadline = &dl
		tasks[i].Priority = uc.priorities.Classify(scope, msg.Sender)
		tasks[i].EstimatedEffortHours = uc.scheduler.EffortFor(tasks[i].Priority)

		uc.l.Debugf(ctx, "enrich: message=%s task=%d priority=%s due=%s deadline_source=%q",
			msg.ID, tasks[i].SequenceIndex, tasks[i].Priority, dl.Due.Format(time.RFC3339), dl.SourceText)
	}

	return tasks
}

// referenceTime anchors deadline resolution at the message's arrival,
// falling back to now for callers that never set it.
func referenceTime(msg model.Message) time.Time {
	if msg.ReceivedAt.IsZero() {
		return time.Now()
	}
	return msg.ReceivedAt
}
