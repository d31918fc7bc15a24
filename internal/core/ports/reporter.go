package ports

import "go.trai.ch/remake/internal/core/domain"

// Reporter is the output sink for user-facing build messages.
// It observes the session and never influences control flow.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Built reports that a target was rebuilt.
	Built(ev domain.BuildEvent)
	// Touched reports that a leaf target was touched.
	Touched(ev domain.TouchEvent)
	// Rejected reports an operation the graph refused.
	Rejected(err error)
	// Summary reports the final state of the graph.
	Summary(snap domain.Snapshot, fingerprint string)
}
