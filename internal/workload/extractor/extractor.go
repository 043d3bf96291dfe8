package extractor

import (
	"sort"
	"strings"

	"inbox-workload/internal/model"
	"inbox-workload/internal/patterns"
)

// ReviewTaskPrefix is the description prefix of the synthesized fallback
// task emitted when a request-bearing message matches no extraction pattern.
const ReviewTaskPrefix = "Review and respond to: "

// Config tunes extraction.
type Config struct {
	// ContextRadius is the number of characters scanned around a clause
	// when capturing project tags and dependency phrases.
	ContextRadius int

	// ProjectKeywords maps a project tag to the keywords that select it.
	ProjectKeywords map[string][]string
}

// Extractor scans message text for actionable task clauses. It is a pure
// function over the message: no state survives a call.
type Extractor struct {
	lib *patterns.Library
	cfg Config

	projectTags []string // sorted for deterministic tag selection
}

// New creates an Extractor over a compiled pattern library.
func New(lib *patterns.Library, cfg Config) *Extractor {
	tags := make([]string, 0, len(cfg.ProjectKeywords))
	for tag := range cfg.ProjectKeywords {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &Extractor{lib: lib, cfg: cfg, projectTags: tags}
}

// Extract returns the candidate tasks found in msg, possibly empty.
// Every extraction pattern match yields one task; duplicates from
// overlapping clauses are acceptable and left to downstream consumers.
// When nothing matches but the message still reads like a request, exactly
// one fallback review task is emitted, so every request-bearing message
// yields at least one task.
func (e *Extractor) Extract(msg model.Message) []model.Task {
	text := msg.Text()

	var tasks []model.Task
	for _, m := range e.lib.ExtractionMatches(text) {
		window := ContextWindow(text, m.Description, e.cfg.ContextRadius)
		tasks = append(tasks, e.newTask(msg, len(tasks), m.Description, window))
	}

	if len(tasks) == 0 && e.lib.ContainsRequestMarker(text) {
		desc := ReviewTaskPrefix + strings.TrimSpace(msg.Subject)
		tasks = append(tasks, e.newTask(msg, 0, desc, text))
	}

	return tasks
}

func (e *Extractor) newTask(msg model.Message, index int, description, window string) model.Task {
	return model.Task{
		SourceMessageID: msg.ID,
		SequenceIndex:   index,
		UID:             model.NewTaskUID(msg.ID, index),
		Description:     description,
		Sender:          msg.Sender,
		ReceivedAt:      msg.ReceivedAt,
		Status:          model.StatusPending,
		ProjectTag:      e.projectTag(window),
		Dependencies:    e.lib.DependencyPhrases(window),
	}
}

// projectTag returns the first configured project whose keywords appear in
// the clause context, checked in tag order for determinism.
func (e *Extractor) projectTag(window string) string {
	lowered := strings.ToLower(window)
	for _, tag := range e.projectTags {
		for _, kw := range e.cfg.ProjectKeywords[tag] {
			if kw != "" && strings.Contains(lowered, strings.ToLower(kw)) {
				return tag
			}
		}
	}
	return ""
}

// ContextWindow returns the slice of text surrounding the first
// case-insensitive occurrence of target, radius characters each side.
// Empty when target does not occur (e.g. synthesized descriptions).
func ContextWindow(text, target string, radius int) string {
	if target == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(target))
	if idx == -1 {
		return ""
	}

	start := idx - radius
	if start < 0 {
		start = 0
	}
	end := idx + len(target) + radius
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
