package usecase

import (
	"inbox-workload/internal/workload/deadline"
	"inbox-workload/internal/workload/extractor"
	"inbox-workload/internal/workload/priority"
	"inbox-workload/internal/workload/scheduler"
	pkgLog "inbox-workload/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	extractor     *extractor.Extractor
	deadlines     *deadline.Resolver
	priorities    *priority.Classifier
	scheduler     *scheduler.Scheduler
	contextRadius int
}

// New creates a new workload UseCase instance.
func New(
	l pkgLog.Logger,
	ex *extractor.Extractor,
	dl *deadline.Resolver,
	pr *priority.Classifier,
	sch *scheduler.Scheduler,
	contextRadius int,
) *implUseCase {
	return &implUseCase{
		l:             l,
		extractor:     ex,
		deadlines:     dl,
		priorities:    pr,
		scheduler:     sch,
		contextRadius: contextRadius,
	}
}
