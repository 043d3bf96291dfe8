package extractor

import (
	"testing"

	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
)

func newTestExtractor(projects map[string][]string) *Extractor {
	return New(patterns.NewLibrary(), Config{
		ContextRadius:   200,
		ProjectKeywords: projects,
	})
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		msg       model.Message
		wantDescs []string
	}{
		{
			name: "Direct request",
			msg: model.Message{
				ID:      "m1",
				Subject: "Report",
				Body:    "Please send the quarterly report.",
			},
			wantDescs: []string{"send the quarterly report"},
		},
		{
			name: "Assignment",
			msg: model.Message{
				ID:      "m2",
				Subject: "Onboarding",
				Body:    "Your task is to prepare the onboarding deck; slides are in the drive.",
			},
			wantDescs: []string{"prepare the onboarding deck"},
		},
		{
			name: "Action item label",
			msg: model.Message{
				ID:      "m3",
				Subject: "Minutes",
				Body:    "Action items: update the roadmap.",
			},
			wantDescs: []string{"update the roadmap"},
		},
		{
			name: "Multiple clauses yield multiple tasks",
			msg: model.Message{
				ID:      "m4",
				Subject: "Two things",
				Body:    "Could you check the logs? Also, can you restart the staging box.",
			},
			wantDescs: []string{"check the logs", "restart the staging box"},
		},
		{
			name: "Fallback review task for a bare question",
			msg: model.Message{
				ID:      "m5",
				Subject: "Budget question",
				Body:    "Any idea where the travel numbers ended up?",
			},
			wantDescs: []string{ReviewTaskPrefix + "Budget question"},
		},
		{
			name: "No action language, no tasks",
			msg: model.Message{
				ID:      "m6",
				Subject: "Newsletter",
				Body:    "Enjoy the spring edition.",
			},
			wantDescs: nil,
		},
	}

	e := newTestExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := e.Extract(tt.msg)
			if len(tasks) != len(tt.wantDescs) {
				t.Fatalf("Extract() = %d tasks, want %d", len(tasks), len(tt.wantDescs))
			}
			for i, want := range tt.wantDescs {
				if tasks[i].Description != want {
					t.Errorf("task[%d].Description = %q, want %q", i, tasks[i].Description, want)
				}
				if tasks[i].SequenceIndex != i {
					t.Errorf("task[%d].SequenceIndex = %d, want %d", i, tasks[i].SequenceIndex, i)
				}
				if tasks[i].SourceMessageID != tt.msg.ID {
					t.Errorf("task[%d].SourceMessageID = %q, want %q", i, tasks[i].SourceMessageID, tt.msg.ID)
				}
				if tasks[i].Status != model.StatusPending {
					t.Errorf("task[%d].Status = %s, want pending", i, tasks[i].Status)
				}
			}
		})
	}
}

func TestExtract_DeterministicUIDs(t *testing.T) {
	e := newTestExtractor(nil)
	msg := model.Message{ID: "m1", Subject: "Report", Body: "Please send the quarterly report."}

	first := e.Extract(msg)
	second := e.Extract(msg)
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Extract() = %d/%d tasks, want 1/1", len(first), len(second))
	}
	if first[0].UID != second[0].UID {
		t.Errorf("UIDs differ across runs: %q vs %q", first[0].UID, second[0].UID)
	}
}

func TestExtract_ProjectTagAndDependencies(t *testing.T) {
	e := newTestExtractor(map[string][]string{
		"apollo": {"apollo", "launch review"},
	})

	msg := model.Message{
		ID:      "m1",
		Subject: "Apollo launch review",
		Body:    "Please update the risk register, once the vendor audit is done.",
	}
	tasks := e.Extract(msg)
	if len(tasks) != 1 {
		t.Fatalf("Extract() = %d tasks, want 1", len(tasks))
	}
	if tasks[0].ProjectTag != "apollo" {
		t.Errorf("ProjectTag = %q, want %q", tasks[0].ProjectTag, "apollo")
	}
	if len(tasks[0].Dependencies) != 1 || tasks[0].Dependencies[0] != "the vendor audit" {
		t.Errorf("Dependencies = %v, want [the vendor audit]", tasks[0].Dependencies)
	}
}

func TestContextWindow(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target string
		radius int
		want   string
	}{
		{
			name:   "Window clamps at both ends",
			text:   "abc target xyz",
			target: "target",
			radius: 100,
			want:   "abc target xyz",
		},
		{
			name:   "Window trims to radius",
			text:   "0123456789 target 9876543210",
			target: "target",
			radius: 3,
			want:   "89 target 98",
		},
		{
			name:   "Case-insensitive lookup",
			text:   "Send the REPORT now",
			target: "report",
			radius: 4,
			want:   "the REPORT now",
		},
		{
			name:   "Absent target yields empty window",
			text:   "nothing to see",
			target: "report",
			radius: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContextWindow(tt.text, tt.target, tt.radius); got != tt.want {
				t.Errorf("ContextWindow() = %q, want %q", got, tt.want)
			}
		})
	}
}
