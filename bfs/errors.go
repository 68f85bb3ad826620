package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidSource is returned when the source vertex is outside [0, n).
	// It is reported before anything is allocated.
	ErrInvalidSource = errors.New("bfs: source vertex out of range")

	// ErrFatalResource wraps a failure of the initialization workers (CPU
	// pinning or a crashed worker). No parents are returned with it: a
	// partially initialized parent array would corrupt every later result.
	ErrFatalResource = errors.New("bfs: fatal resource error")

	// ErrAlreadyRun is returned when Compute is called twice on one BFS.
	ErrAlreadyRun = errors.New("bfs: instance already used")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVerification is returned by Verify when a parent array is not a valid BFS tree.
	ErrVerification = errors.New("bfs: verification failed")

	// ErrNotReached is returned by PathTo for vertices the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)
