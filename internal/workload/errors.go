package workload

import "errors"

// Domain-specific errors for the workload package. The pipeline itself is
// fail-soft and never errors on message content; these cover transport-level
// misuse only.
var (
	ErrMissingMessageID = errors.New("message id is required")
	ErrNoMessages       = errors.New("at least one message is required")
)
