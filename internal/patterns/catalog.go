package patterns

// Raw pattern catalog. These tables are data, not behavior: they are
// compiled exactly once by NewLibrary and never mutated afterwards.

// clauseEnd terminates a captured clause: sentence punctuation, a newline,
// or end of text (so sentence-final requests still extract).
const clauseEnd = `(?:[.;,!?\n]|$)`

// extractionSources are applied in order; every match yields one task.
var extractionSources = []extractionSource{
	// Direct requests
	{KindDirectRequest, `(?:please|kindly|could you|can you)\s+(.+?)` + clauseEnd},
	{KindDirectRequest, `(?:need|want|require)\s+you\s+to\s+(.+?)` + clauseEnd},
	{KindDirectRequest, `(?:would|should)\s+(?:like|appreciate)\s+(?:it\s+)?if\s+you\s+(?:could|would)\s+(.+?)` + clauseEnd},

	// Assignments
	{KindAssignment, `(?:assign|assigning|assigned)\s+(?:to\s+)?you\s+(.+?)` + clauseEnd},
	{KindAssignment, `your\s+(?:task|assignment|responsibility)\s+is\s+to\s+(.+?)` + clauseEnd},

	// Labeled action items
	{KindActionItem, `action\s+items?(?:\s+for\s+you)?:\s+(.+?)` + clauseEnd},
	{KindActionItem, `follow(?:\s+|-)?up(?:\s+items?)?:\s+(.+?)` + clauseEnd},

	// Deadlines with tasks
	{KindDeadlineTask, `(?:due|complete|finish|submit|deliver)\s+by\s+.*?:\s+(.+?)` + clauseEnd},

	// Implicit dependency phrasing
	{KindImplicit, `(?:waiting|depend)(?:ing)?\s+on\s+you\s+(?:to|for)\s+(.+?)` + clauseEnd},
	{KindImplicit, `(?:expecting|expect)\s+you\s+to\s+(.+?)` + clauseEnd},
}

const (
	weekdayNames = `Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday`
	monthNames   = `January|February|March|April|May|June|July|August|September|October|November|December`
)

// deadlineSources are applied in order; the first capture wins. Each
// pattern's single capture group is the deadline phrase handed to the
// resolver for classification.
var deadlineSources = []string{
	// Explicit deadlines
	`(?:due|deadline|complete|finish|submit|deliver)\s+by\s+(.+?)` + clauseEnd,
	`(?:due|deadline|completion)\s+date(?:\s+is)?:?\s+(.+?)` + clauseEnd,
	`(?:needed|required)\s+by\s+(.+?)` + clauseEnd,

	// Timeframe deadlines
	`(within\s+\d+\s+(?:day|days|week|weeks|month|months))`,
	`in\s+the\s+next\s+(\d+\s+(?:day|days|week|weeks|month|months))`,
	`by\s+(?:the\s+)?end\s+of\s+(today|tomorrow|this\s+week|next\s+week|this\s+month)`,

	// Specific dates
	`by\s+((?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?)`,
	`by\s+(\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + monthNames + `)(?:,?\s+\d{4})?)`,

	// Relative dates
	`by\s+(tomorrow|(?:this|next)\s+(?:` + weekdayNames + `))`,

	// Bare relative terms as a last resort
	`\b(today|tomorrow|this\s+week|next\s+week|this\s+month)\b`,
}

// urgencyTiers lists indicator phrases per tier, most urgent first.
// The first tier with any whole-word match wins.
var urgencyTiers = []urgencyTier{
	{Level: "critical", Phrases: []string{
		"urgent", "critical", "emergency", "asap", "immediately", "right away",
		"highest priority", "top priority", "crisis", "crucial", "vital",
	}},
	{Level: "high", Phrases: []string{
		"important", "priority", "as soon as possible", "timely", "pressing",
		"significant", "key", "major", "essential", "necessary",
	}},
	{Level: "medium", Phrases: []string{
		"needed", "required", "should", "would be good", "appreciate",
		"helpful", "beneficial", "valuable", "useful",
	}},
	{Level: "low", Phrases: []string{
		"when you can", "at your convenience", "if you have time", "optional",
		"nice to have", "would be nice", "not urgent", "low priority",
	}},
}

// requestVerbSource marks messages that warrant a fallback review task even
// when no extraction pattern fires.
const requestVerbSource = `\b(?:please|kindly|request|need|review|send|confirm|respond|reply|let\s+me\s+know|get\s+back\s+to\s+me|your\s+thoughts|what\s+do\s+you\s+think)\b`

// dependencySources capture textual prerequisites of a task, best-effort.
var dependencySources = []string{
	`after\s+you\s+(.+?)` + clauseEnd,
	`once\s+(.+?)\s+is\s+(?:done|complete|completed|finished)`,
	`(?:depends?\s+on|blocked\s+(?:on|by))\s+(.+?)` + clauseEnd,
}
