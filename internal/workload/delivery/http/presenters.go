package http

import (
	"time"

	"inbox-workload/internal/model"
	"inbox-workload/internal/workload"
)

// --- Request DTOs ---

type messageReq struct {
	ID         string    `json:"id"          binding:"required"`
	Sender     string    `json:"sender"      binding:"max=320"`
	Subject    string    `json:"subject"     binding:"max=1000"`
	Body       string    `json:"body"        binding:"max=100000"`
	ReceivedAt time.Time `json:"received_at"`
}

func (r messageReq) toModel() model.Message {
	return model.Message{
		ID:         r.ID,
		Sender:     r.Sender,
		Subject:    r.Subject,
		Body:       r.Body,
		ReceivedAt: r.ReceivedAt,
	}
}

type analyzeReq struct {
	Message messageReq `json:"message" binding:"required"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() workload.AnalyzeInput {
	return workload.AnalyzeInput{Message: r.Message.toModel()}
}

// ---

type analyzeBatchReq struct {
	Messages      []messageReq `json:"messages"       binding:"required,min=1,dive"`
	ReferenceTime time.Time    `json:"reference_time"`
}

func (r analyzeBatchReq) validate() error { return nil }

func (r analyzeBatchReq) toInput() workload.AnalyzeBatchInput {
	msgs := make([]model.Message, len(r.Messages))
	for i, m := range r.Messages {
		msgs[i] = m.toModel()
	}
	return workload.AnalyzeBatchInput{
		Messages:      msgs,
		ReferenceTime: r.ReferenceTime,
	}
}

// ---

type taskReq struct {
	SourceMessageID      string     `json:"source_message_id" binding:"required"`
	SequenceIndex        int        `json:"sequence_index"`
	Description          string     `json:"description"       binding:"required"`
	Sender               string     `json:"sender"`
	Priority             string     `json:"priority"          binding:"omitempty,oneof=critical high medium low optional"`
	EstimatedEffortHours float64    `json:"estimated_effort_hours"`
	Due                  *time.Time `json:"due"`
	ProjectTag           string     `json:"project_tag"`
}

func (r taskReq) toModel() model.Task {
	t := model.Task{
		SourceMessageID:      r.SourceMessageID,
		SequenceIndex:        r.SequenceIndex,
		UID:                  model.NewTaskUID(r.SourceMessageID, r.SequenceIndex),
		Description:          r.Description,
		Sender:               r.Sender,
		Status:               model.StatusPending,
		EstimatedEffortHours: r.EstimatedEffortHours,
		ProjectTag:           r.ProjectTag,
	}
	if r.Priority != "" {
		t.Priority = model.ParsePriority(r.Priority)
	}
	if r.Due != nil {
		due := *r.Due
		t.Deadline = &model.Deadline{
			Date: time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location()),
			Time: due.Format("15:04"),
			Due:  due,
		}
	}
	return t
}

type snapshotReq struct {
	Tasks         []taskReq `json:"tasks"          binding:"required,min=1,dive"`
	ReferenceTime time.Time `json:"reference_time"`
}

func (r snapshotReq) validate() error { return nil }

func (r snapshotReq) toInput() workload.SnapshotInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = t.toModel()
	}
	return workload.SnapshotInput{
		Tasks:         tasks,
		ReferenceTime: r.ReferenceTime,
	}
}

// --- Response DTOs ---

type deadlineResp struct {
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Due        time.Time `json:"due"`
	SourceText string    `json:"source_text,omitempty"`
}

type taskResp struct {
	UID                  string        `json:"uid"`
	SourceMessageID      string        `json:"source_message_id"`
	SequenceIndex        int           `json:"sequence_index"`
	Description          string        `json:"description"`
	Sender               string        `json:"sender,omitempty"`
	ReceivedAt           time.Time     `json:"received_at"`
	Deadline             *deadlineResp `json:"deadline,omitempty"`
	Priority             string        `json:"priority"`
	Status               string        `json:"status"`
	EstimatedEffortHours float64       `json:"estimated_effort_hours"`
	ProjectTag           string        `json:"project_tag,omitempty"`
	Dependencies         []string      `json:"dependencies,omitempty"`
}

func newTaskResp(task model.Task) taskResp {
	resp := taskResp{
		UID:                  task.UID,
		SourceMessageID:      task.SourceMessageID,
		SequenceIndex:        task.SequenceIndex,
		Description:          task.Description,
		Sender:               task.Sender,
		ReceivedAt:           task.ReceivedAt,
		Priority:             string(task.Priority),
		Status:               string(task.Status),
		EstimatedEffortHours: task.EstimatedEffortHours,
		ProjectTag:           task.ProjectTag,
		Dependencies:         task.Dependencies,
	}
	if task.Deadline != nil {
		resp.Deadline = &deadlineResp{
			Date:       task.Deadline.Date.Format("2006-01-02"),
			Time:       task.Deadline.Time,
			Due:        task.Deadline.Due,
			SourceText: task.Deadline.SourceText,
		}
	}
	return resp
}

type scheduledTaskResp struct {
	Task            taskResp `json:"task"`
	CumulativeHours float64  `json:"cumulative_hours"`
	AtRisk          bool     `json:"at_risk"`
}

type snapshotResp struct {
	TotalTasks          int                 `json:"total_tasks"`
	CountsByPriority    map[string]int      `json:"counts_by_priority"`
	DueToday            int                 `json:"due_today"`
	TotalEstimatedHours float64             `json:"total_estimated_hours"`
	DailyCapacityHours  float64             `json:"daily_capacity_hours"`
	Overflow            bool                `json:"overflow"`
	Entries             []scheduledTaskResp `json:"entries"`
	Recommendations     []string            `json:"recommendations,omitempty"`
}

func newSnapshotResp(snap model.WorkloadSnapshot) snapshotResp {
	counts := make(map[string]int, len(snap.CountsByPriority))
	for level, n := range snap.CountsByPriority {
		counts[string(level)] = n
	}
	entries := make([]scheduledTaskResp, len(snap.Entries))
	for i, e := range snap.Entries {
		entries[i] = scheduledTaskResp{
			Task:            newTaskResp(e.Task),
			CumulativeHours: e.CumulativeHours,
			AtRisk:          e.AtRisk,
		}
	}
	return snapshotResp{
		TotalTasks:          snap.TotalTasks,
		CountsByPriority:    counts,
		DueToday:            snap.DueToday,
		TotalEstimatedHours: snap.TotalEstimatedHours,
		DailyCapacityHours:  snap.DailyCapacityHours,
		Overflow:            snap.Overflow,
		Entries:             entries,
		Recommendations:     snap.Recommendations,
	}
}

type analyzeResp struct {
	Tasks    []taskResp   `json:"tasks"`
	Snapshot snapshotResp `json:"snapshot"`
}

func (h *handler) newAnalyzeResp(tasks []model.Task, snap model.WorkloadSnapshot) analyzeResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return analyzeResp{Tasks: out, Snapshot: newSnapshotResp(snap)}
}

type snapshotOnlyResp struct {
	Snapshot snapshotResp `json:"snapshot"`
}

func (h *handler) newSnapshotResp(out workload.SnapshotOutput) snapshotOnlyResp {
	return snapshotOnlyResp{Snapshot: newSnapshotResp(out.Snapshot)}
}
