package ingest

import (
	"inbox-workload/internal/workload"
	pkgLog "inbox-workload/pkg/log"
)

// Handler receives inbound messages pushed by a mail gateway and feeds them
// into the workload pipeline.
type Handler struct {
	workloadUC workload.UseCase
	security   *SecurityValidator
	l          pkgLog.Logger
}

func NewHandler(workloadUC workload.UseCase, securityConfig SecurityConfig, l pkgLog.Logger) *Handler {
	return &Handler{
		workloadUC: workloadUC,
		security:   NewSecurityValidator(securityConfig),
		l:          l,
	}
}
