package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/quantmind-br/locate/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Found("/pkg/build/Release/core2dump")
	r.Linking("/pkg/build/Release/core2dump", "/pkg/npm/core2dump")

	assert.Equal(t,
		"Found binary /pkg/build/Release/core2dump\n"+
			"Linking binary /pkg/build/Release/core2dump to /pkg/npm/core2dump\n",
		buf.String())
}

func TestReporter_NotFound(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).NotFound()

	assert.Equal(t, "Build result not found\n", buf.String())
}

func TestRenderCandidates(t *testing.T) {
	DisableColors()
	defer EnableColors()

	rows := []CandidateRow{
		{
			Priority: 1,
			Probe: core.Probe{
				Candidate: core.Candidate{Dir: []string{"build"}, Name: "core2dump"},
				State:     core.ProbeAbsent,
			},
		},
		{
			Priority: 2,
			Probe: core.Probe{
				Candidate: core.Candidate{Dir: []string{"build", "Release"}, Name: "core2dump"},
				State:     core.ProbeExists,
			},
			Selected: true,
		},
		{
			Priority: 3,
			Probe: core.Probe{
				Candidate: core.Candidate{Dir: []string{"out", "Debug"}, Name: "core2dump"},
				State:     core.ProbeFailed,
				Err:       errors.New("permission denied"),
			},
		},
	}

	var buf bytes.Buffer
	RenderCandidates(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "build/core2dump")
	assert.Contains(t, out, "build/Release/core2dump")
	assert.Contains(t, out, "selected")
	assert.Contains(t, out, "permission denied")
}

func TestColorizeProbeState(t *testing.T) {
	DisableColors()
	defer EnableColors()

	assert.Equal(t, "exists", ColorizeProbeState(core.ProbeExists))
	assert.Equal(t, "absent", ColorizeProbeState(core.ProbeAbsent))
	assert.Equal(t, "probe-failed", ColorizeProbeState(core.ProbeFailed))
	assert.Equal(t, "other", ColorizeProbeState(core.ProbeState("other")))
}
