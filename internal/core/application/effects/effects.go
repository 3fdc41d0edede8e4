// Package effects runs the side effects of committed commands: history
// entries and printable documents. Both are best effort. They run on a
// background worker and their failures are logged, never returned to the
// command that caused them.
package effects

import (
	"repairshop/internal/pkg/worker"
)

// Submitter queues background work without blocking.
type Submitter interface {
	Submit(name string, task worker.Task) error
}
