package publish

import (
	"context"
	"path/filepath"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/quantmind-br/locate/internal/core"
	"github.com/quantmind-br/locate/internal/fsops"
	"github.com/quantmind-br/locate/internal/paths"
	"github.com/spf13/afero"
)

// maxHintDistance bounds how different a file name may be from an expected
// executable name and still be suggested
const maxHintDistance = 2

// Scan probes every candidate without stopping at the first hit. It never
// mutates the filesystem.
func Scan(ctx context.Context, fs afero.Fs, root string, layout paths.Layout) ([]core.Probe, error) {
	candidates := layout.Candidates(root)
	probes := make([]core.Probe, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return probes, err
		}
		state, err := fsops.Probe(fs, c.Path)
		probes = append(probes, core.Probe{Candidate: c, State: state, Err: err})
	}
	return probes, nil
}

// FirstExisting returns the index of the probe a publish run would select,
// or -1 when none exists
func FirstExisting(probes []core.Probe) int {
	for i, p := range probes {
		if p.State == core.ProbeExists {
			return i
		}
	}
	return -1
}

// Hint is a file in a candidate directory whose name resembles an expected
// executable name
type Hint struct {
	Dir  string // Candidate directory relative to the root
	File string
}

// NearMisses lists files in existing candidate directories that look like
// the executable but match none of the layout's names. Only the candidate
// directories themselves are read.
func NearMisses(fs afero.Fs, root string, layout paths.Layout) []Hint {
	names := layout.Names()
	exact := make(map[string]bool, len(names))
	for _, n := range names {
		exact[n] = true
	}

	var hints []Hint
	for _, dir := range layout.Dirs() {
		abs := filepath.Join(append([]string{root}, dir...)...)
		if !fsops.IsDir(fs, abs) {
			continue
		}
		files, err := fsops.ListFiles(fs, abs)
		if err != nil {
			continue
		}

		for _, file := range files {
			if exact[file] || !resembles(file, names) {
				continue
			}
			hints = append(hints, Hint{Dir: filepath.Join(dir...), File: file})
		}
	}
	return hints
}

func resembles(file string, names []string) bool {
	for _, name := range names {
		if fuzzy.MatchNormalizedFold(name, file) {
			return true
		}
		if fuzzy.LevenshteinDistance(name, file) <= maxHintDistance {
			return true
		}
	}
	return false
}
