package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
	"inbox-workload/internal/workload"
	"inbox-workload/internal/workload/deadline"
	"inbox-workload/internal/workload/extractor"
	"inbox-workload/internal/workload/priority"
	"inbox-workload/internal/workload/scheduler"
	"inbox-workload/pkg/datemath"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestUseCase(t *testing.T, senderWeights map[string]float64) workload.UseCase {
	t.Helper()

	lib := patterns.NewLibrary()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	ex := extractor.New(lib, extractor.Config{ContextRadius: 200})
	dl := deadline.New(lib, dates, deadline.Config{
		EndOfBusinessHour:   17,
		DefaultDeadlineDays: 7,
		WeekDeadlineWeekday: time.Friday,
		NextWeekWeekday:     time.Wednesday,
	})
	pr := priority.New(lib, priority.Config{
		SenderWeights:       senderWeights,
		SenderHighThreshold: 0.8,
	})
	sch := scheduler.New(scheduler.Config{
		DailyCapacityHours:   8.0,
		MaxCriticalPerDay:    2,
		SenderDominanceShare: 0.5,
	})

	return New(mockLogger{}, ex, dl, pr, sch, 200)
}

func TestAnalyze_UrgentRequest(t *testing.T) {
	uc := newTestUseCase(t, nil)

	// Monday 09:30.
	received := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	out, err := uc.Analyze(context.Background(), workload.AnalyzeInput{
		Message: model.Message{
			ID:         "msg-1",
			Sender:     "boss@example.com",
			Subject:    "Report",
			Body:       "Please send the report by tomorrow, this is urgent.",
			ReceivedAt: received,
		},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("Analyze() tasks = %d, want 1", len(out.Tasks))
	}

	task := out.Tasks[0]
	if task.Description != "send the report by tomorrow" {
		t.Errorf("Description = %q", task.Description)
	}
	if task.Priority != model.PriorityCritical {
		t.Errorf("Priority = %s, want critical", task.Priority)
	}
	if task.EstimatedEffortHours != 2.0 {
		t.Errorf("EstimatedEffortHours = %v, want 2.0", task.EstimatedEffortHours)
	}
	if task.Status != model.StatusPending {
		t.Errorf("Status = %s, want pending", task.Status)
	}
	if task.UID == "" || task.UID != model.NewTaskUID("msg-1", 0) {
		t.Errorf("UID = %q, want deterministic id", task.UID)
	}

	if task.Deadline == nil {
		t.Fatal("Deadline is nil")
	}
	wantDue := time.Date(2026, 3, 3, 17, 0, 0, 0, time.UTC)
	if !task.Deadline.Due.Equal(wantDue) {
		t.Errorf("Deadline.Due = %v, want %v", task.Deadline.Due, wantDue)
	}
	if task.Deadline.SourceText != "tomorrow" {
		t.Errorf("Deadline.SourceText = %q, want %q", task.Deadline.SourceText, "tomorrow")
	}

	if out.Snapshot.TotalTasks != 1 {
		t.Errorf("Snapshot.TotalTasks = %d, want 1", out.Snapshot.TotalTasks)
	}
	if out.Snapshot.Overflow {
		t.Error("Snapshot.Overflow = true, want false")
	}
	if out.Snapshot.CountsByPriority[model.PriorityCritical] != 1 {
		t.Errorf("CountsByPriority[critical] = %d, want 1", out.Snapshot.CountsByPriority[model.PriorityCritical])
	}
}

func TestAnalyze_NoActionMessage(t *testing.T) {
	uc := newTestUseCase(t, nil)

	out, err := uc.Analyze(context.Background(), workload.AnalyzeInput{
		Message: model.Message{
			ID:         "msg-2",
			Sender:     "news@example.com",
			Subject:    "Newsletter",
			Body:       "Enjoy the spring edition.",
			ReceivedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(out.Tasks) != 0 {
		t.Fatalf("Analyze() tasks = %d, want 0", len(out.Tasks))
	}
	if out.Snapshot.TotalTasks != 0 {
		t.Errorf("Snapshot.TotalTasks = %d, want 0", out.Snapshot.TotalTasks)
	}
}

func TestAnalyze_FallbackReviewTask(t *testing.T) {
	uc := newTestUseCase(t, nil)

	// No extraction pattern fires, but the question mark marks a request.
	out, err := uc.Analyze(context.Background(), workload.AnalyzeInput{
		Message: model.Message{
			ID:         "msg-3",
			Sender:     "peer@example.com",
			Subject:    "Budget question",
			Body:       "Any idea where the travel numbers ended up?",
			ReceivedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("Analyze() tasks = %d, want 1", len(out.Tasks))
	}

	task := out.Tasks[0]
	if task.Description != extractor.ReviewTaskPrefix+"Budget question" {
		t.Errorf("Description = %q", task.Description)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("Priority = %s, want medium", task.Priority)
	}

	// No deadline phrase anywhere: default horizon, end of business.
	if task.Deadline == nil {
		t.Fatal("Deadline is nil")
	}
	wantDue := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
	if !task.Deadline.Due.Equal(wantDue) {
		t.Errorf("Deadline.Due = %v, want %v", task.Deadline.Due, wantDue)
	}
	if task.Deadline.SourceText != "" {
		t.Errorf("Deadline.SourceText = %q, want empty", task.Deadline.SourceText)
	}
}

func TestAnalyze_MissingMessageID(t *testing.T) {
	uc := newTestUseCase(t, nil)

	_, err := uc.Analyze(context.Background(), workload.AnalyzeInput{
		Message: model.Message{Body: "Please review this."},
	})
	if !errors.Is(err, workload.ErrMissingMessageID) {
		t.Fatalf("Analyze() error = %v, want ErrMissingMessageID", err)
	}
}

func TestAnalyze_SenderWeightFallback(t *testing.T) {
	uc := newTestUseCase(t, map[string]float64{"ceo@example.com": 0.9})

	out, err := uc.Analyze(context.Background(), workload.AnalyzeInput{
		Message: model.Message{
			ID:         "msg-4",
			Sender:     "ceo@example.com",
			Subject:    "Venue",
			Body:       "Please confirm the venue booking.",
			ReceivedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("Analyze() tasks = %d, want 1", len(out.Tasks))
	}
	if out.Tasks[0].Priority != model.PriorityHigh {
		t.Errorf("Priority = %s, want high (sender weight)", out.Tasks[0].Priority)
	}
}

func TestAnalyzeBatch_OrderAndSnapshot(t *testing.T) {
	uc := newTestUseCase(t, nil)

	received := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out, err := uc.AnalyzeBatch(context.Background(), workload.AnalyzeBatchInput{
		Messages: []model.Message{
			{ID: "msg-a", Sender: "a@example.com", Subject: "Budget", Body: "Please review the budget figures.", ReceivedAt: received},
			{ID: "msg-b", Sender: "b@example.com", Subject: "Venue", Body: "Please confirm the venue booking.", ReceivedAt: received},
		},
		ReferenceTime: received,
	})
	if err != nil {
		t.Fatalf("AnalyzeBatch() error = %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("AnalyzeBatch() tasks = %d, want 2", len(out.Tasks))
	}

	// Output order follows input order regardless of goroutine completion.
	if out.Tasks[0].SourceMessageID != "msg-a" || out.Tasks[1].SourceMessageID != "msg-b" {
		t.Errorf("task order = [%s %s], want [msg-a msg-b]",
			out.Tasks[0].SourceMessageID, out.Tasks[1].SourceMessageID)
	}
	if out.Snapshot.TotalTasks != 2 {
		t.Errorf("Snapshot.TotalTasks = %d, want 2", out.Snapshot.TotalTasks)
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	uc := newTestUseCase(t, nil)

	_, err := uc.AnalyzeBatch(context.Background(), workload.AnalyzeBatchInput{})
	if !errors.Is(err, workload.ErrNoMessages) {
		t.Fatalf("AnalyzeBatch() error = %v, want ErrNoMessages", err)
	}
}

func TestSnapshot_NormalizesAndAccounts(t *testing.T) {
	uc := newTestUseCase(t, nil)

	// Nine medium tasks at the default 1h each overflow an 8h day.
	tasks := make([]model.Task, 9)
	for i := range tasks {
		tasks[i] = model.Task{
			SourceMessageID: "stored",
			SequenceIndex:   i,
			Description:     "follow up",
		}
	}

	out, err := uc.Snapshot(context.Background(), workload.SnapshotInput{
		Tasks:         tasks,
		ReferenceTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	snap := out.Snapshot
	if snap.TotalTasks != 9 {
		t.Fatalf("TotalTasks = %d, want 9", snap.TotalTasks)
	}
	if snap.CountsByPriority[model.PriorityMedium] != 9 {
		t.Errorf("CountsByPriority[medium] = %d, want 9 (blank priorities normalized)",
			snap.CountsByPriority[model.PriorityMedium])
	}
	if snap.TotalEstimatedHours != 9.0 {
		t.Errorf("TotalEstimatedHours = %v, want 9.0", snap.TotalEstimatedHours)
	}
	if !snap.Overflow {
		t.Error("Overflow = false, want true")
	}
	if !snap.Entries[8].AtRisk {
		t.Error("last entry AtRisk = false, want true")
	}
	if snap.Entries[7].AtRisk {
		t.Error("eighth entry AtRisk = true, want false")
	}
}
