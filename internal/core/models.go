package core

import "path/filepath"

// ProbeState is the outcome of checking a single candidate path
type ProbeState string

const (
	ProbeExists ProbeState = "exists"
	ProbeAbsent ProbeState = "absent"
	ProbeFailed ProbeState = "probe-failed"
)

// Candidate is one (directory, filename) pair considered as a possible
// location of the build artifact
type Candidate struct {
	Dir  []string // Segments relative to the search root
	Name string   // Executable filename variant
	Path string   // Absolute path: root + Dir + Name
}

// RelPath returns the candidate path relative to the search root
func (c Candidate) RelPath() string {
	parts := append(append([]string{}, c.Dir...), c.Name)
	return filepath.Join(parts...)
}

// Probe is a candidate together with the result of checking it
type Probe struct {
	Candidate Candidate
	State     ProbeState
	Err       error // Set only when State is ProbeFailed
}

// State tracks progress of a single locate-and-publish run
type State string

const (
	StateSearching State = "searching"
	StateFound     State = "found"
	StatePublished State = "published"
	StateExhausted State = "exhausted"
)

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == StatePublished || s == StateExhausted
}

// Exit codes
const (
	ExitSuccess       = 0
	ExitNotFound      = 1
	ExitInvalidArgs   = 2
	ExitPublishFailed = 3
	ExitInterrupted   = 130
)
