package domain

import "go.trai.ch/zerr"

var (
	// ErrCapacityExceeded is the common cause of every configured-limit violation.
	ErrCapacityExceeded = zerr.New("capacity exceeded")

	// ErrMaxTargetsExceeded is returned when a declaration would introduce a new target
	// into a graph that already holds the configured maximum number of targets.
	ErrMaxTargetsExceeded = zerr.Wrap(ErrCapacityExceeded, "max targets exceeded")

	// ErrMaxDependenciesExceeded is returned when a target already holds the configured
	// maximum number of dependencies.
	ErrMaxDependenciesExceeded = zerr.Wrap(ErrCapacityExceeded, "max dependencies exceeded")

	// ErrTargetNotFound is returned when a touch or rebuild names a target that was never declared.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNonLeafTouch is returned when touching a target that has dependencies.
	ErrNonLeafTouch = zerr.New("cannot update non-leaf object")

	// ErrCyclicDependency is returned when a rebuild walks back into a target already on its path.
	ErrCyclicDependency = zerr.New("cyclic dependency")

	// ErrSelfDependency is returned when a target is declared as its own dependency.
	ErrSelfDependency = zerr.New("target cannot depend on itself")

	// ErrEmptyTargetName is returned when a declaration names an empty target.
	ErrEmptyTargetName = zerr.New("target name is empty")

	// ErrInvalidCommand is returned when a script line cannot be parsed.
	ErrInvalidCommand = zerr.New("invalid command")

	// ErrCommandRejected is returned in strict mode when the graph rejects a command.
	ErrCommandRejected = zerr.New("command rejected")

	// ErrNoTargetsSpecified is returned when a build is requested without target names.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
