package patterns

import (
	"regexp"
	"strings"

	"inbox-workload/internal/model"
)

// ExtractionKind labels which family of pattern produced a match.
type ExtractionKind string

const (
	KindDirectRequest ExtractionKind = "direct_request"
	KindAssignment    ExtractionKind = "assignment"
	KindActionItem    ExtractionKind = "action_item"
	KindDeadlineTask  ExtractionKind = "deadline_task"
	KindImplicit      ExtractionKind = "implicit"
)

type extractionSource struct {
	Kind   ExtractionKind
	Source string
}

type urgencyTier struct {
	Level   model.PriorityLevel
	Phrases []string
}

// Match is one extracted task clause, with its position in the scanned text
// so callers can build context windows around it.
type Match struct {
	Kind        ExtractionKind
	Description string // Captured clause, trimmed of trailing punctuation
	Start       int    // Byte offset of the clause in the scanned text
	End         int
}

// DeadlineMatch is a located deadline phrase.
type DeadlineMatch struct {
	Phrase string
	Start  int
	End    int
}

type extractionRule struct {
	kind ExtractionKind
	re   *regexp.Regexp
}

type tierRule struct {
	level model.PriorityLevel
	re    *regexp.Regexp
}

// Library is the compiled, immutable pattern catalog. Construct once with
// NewLibrary and share freely; it holds no mutable state.
type Library struct {
	extraction []extractionRule
	deadline   []*regexp.Regexp
	urgency    []tierRule
	request    *regexp.Regexp
	dependency []*regexp.Regexp
}

// NewLibrary compiles the full pattern catalog.
func NewLibrary() *Library {
	lib := &Library{}

	for _, src := range extractionSources {
		lib.extraction = append(lib.extraction, extractionRule{
			kind: src.Kind,
			re:   regexp.MustCompile(`(?i)` + src.Source),
		})
	}
	for _, src := range deadlineSources {
		lib.deadline = append(lib.deadline, regexp.MustCompile(`(?i)`+src))
	}
	for _, tier := range urgencyTiers {
		lib.urgency = append(lib.urgency, tierRule{
			level: tier.Level,
			re:    compilePhraseSet(tier.Phrases),
		})
	}
	lib.request = regexp.MustCompile(`(?i)` + requestVerbSource)
	for _, src := range dependencySources {
		lib.dependency = append(lib.dependency, regexp.MustCompile(`(?i)`+src))
	}

	return lib
}

// compilePhraseSet builds a single whole-word alternation from literal
// phrases, with interior spaces matching any whitespace run.
func compilePhraseSet(phrases []string) *regexp.Regexp {
	escaped := make([]string, 0, len(phrases))
	for _, p := range phrases {
		escaped = append(escaped, strings.ReplaceAll(regexp.QuoteMeta(p), ` `, `\s+`))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, `|`) + `)\b`)
}

// ExtractionMatches runs every extraction pattern over text, in catalog
// order, and returns all clause matches. Duplicates are acceptable here;
// deduplication is not this layer's concern.
func (l *Library) ExtractionMatches(text string) []Match {
	var matches []Match
	for _, rule := range l.extraction {
		for _, idx := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			// idx[2]:idx[3] is the clause capture group
			if idx[2] < 0 {
				continue
			}
			desc := strings.TrimRight(strings.TrimSpace(text[idx[2]:idx[3]]), ".,;:!?")
			if desc == "" {
				continue
			}
			matches = append(matches, Match{
				Kind:        rule.kind,
				Description: desc,
				Start:       idx[2],
				End:         idx[3],
			})
		}
	}
	return matches
}

// FindDeadline returns the first deadline phrase in text, in catalog order.
func (l *Library) FindDeadline(text string) (DeadlineMatch, bool) {
	for _, re := range l.deadline {
		idx := re.FindStringSubmatchIndex(text)
		if idx == nil || idx[2] < 0 {
			continue
		}
		phrase := strings.TrimSpace(text[idx[2]:idx[3]])
		if phrase == "" {
			continue
		}
		return DeadlineMatch{Phrase: phrase, Start: idx[2], End: idx[3]}, true
	}
	return DeadlineMatch{}, false
}

// UrgencyTier scans for urgency indicators tier by tier, most urgent first,
// and returns the first tier that matches. Tier order is the tie-break:
// a text carrying both a critical and a low phrase is critical.
func (l *Library) UrgencyTier(text string) (model.PriorityLevel, bool) {
	for _, tier := range l.urgency {
		if tier.re.MatchString(text) {
			return tier.level, true
		}
	}
	return "", false
}

// ContainsRequestMarker reports whether text carries a generic request:
// a question mark or any of the fixed request verbs.
func (l *Library) ContainsRequestMarker(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	return l.request.MatchString(text)
}

// DependencyPhrases captures textual prerequisites mentioned in text.
func (l *Library) DependencyPhrases(text string) []string {
	var deps []string
	seen := make(map[string]bool)
	for _, re := range l.dependency {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			dep := strings.TrimRight(strings.TrimSpace(m[1]), ".,;:!?")
			if dep == "" || seen[strings.ToLower(dep)] {
				continue
			}
			seen[strings.ToLower(dep)] = true
			deps = append(deps, dep)
		}
	}
	return deps
}
