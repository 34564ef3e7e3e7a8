package paths

import (
	"path/filepath"

	"github.com/quantmind-br/locate/internal/core"
)

// ExecutableName is the artifact produced by the native build
const ExecutableName = "core2dump"

// Layout is the fixed search space: candidate build-output directories in
// priority order, executable name variants tried inside each of them, and
// the directory the artifact is published into. A Layout never changes
// after construction.
type Layout struct {
	dirs       [][]string
	names      []string
	publishDir []string
}

// DefaultLayout returns the build-output layouts produced by node-gyp,
// cmake and gyp/ninja, most preferred first.
func DefaultLayout() Layout {
	return NewLayout(
		[][]string{
			{"build"},
			{"build", "Release"},
			{"build", "Debug"},
			{"out", "Release"},
			{"out", "Debug"},
			{"build", "default"},
		},
		[]string{ExecutableName, ExecutableName + ".exe"},
		[]string{"npm"},
	)
}

// NewLayout creates a Layout from explicit lists. The slices are copied.
func NewLayout(dirs [][]string, names []string, publishDir []string) Layout {
	l := Layout{
		dirs:       make([][]string, len(dirs)),
		names:      append([]string(nil), names...),
		publishDir: append([]string(nil), publishDir...),
	}
	for i, d := range dirs {
		l.dirs[i] = append([]string(nil), d...)
	}
	return l
}

// Dirs returns a copy of the candidate directories.
func (l Layout) Dirs() [][]string {
	out := make([][]string, len(l.dirs))
	for i, d := range l.dirs {
		out[i] = append([]string(nil), d...)
	}
	return out
}

// Names returns a copy of the executable name variants.
func (l Layout) Names() []string {
	return append([]string(nil), l.names...)
}

// Candidates expands the layout under root in search order: the outer loop
// walks directories, the inner loop walks names.
func (l Layout) Candidates(root string) []core.Candidate {
	candidates := make([]core.Candidate, 0, len(l.dirs)*len(l.names))
	for _, dir := range l.dirs {
		for _, name := range l.names {
			c := core.Candidate{
				Dir:  append([]string(nil), dir...),
				Name: name,
			}
			c.Path = filepath.Join(root, c.RelPath())
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// PublishDir returns root joined with the publish directory.
func (l Layout) PublishDir(root string) string {
	return filepath.Join(append([]string{root}, l.publishDir...)...)
}

// PublishTarget returns the link path an artifact named name is published at.
func (l Layout) PublishTarget(root, name string) string {
	return filepath.Join(l.PublishDir(root), name)
}
