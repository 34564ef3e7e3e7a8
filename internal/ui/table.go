package ui

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/locate/internal/core"
)

// CandidateRow is one line of the candidates report
type CandidateRow struct {
	Priority int
	Probe    core.Probe
	Selected bool
}

// ColorizeProbeState returns a colored probe state string
func ColorizeProbeState(state core.ProbeState) string {
	switch state {
	case core.ProbeExists:
		return Success.Sprint(string(state))
	case core.ProbeAbsent:
		return Muted.Sprint(string(state))
	case core.ProbeFailed:
		return Error.Sprint(string(state))
	default:
		return string(state)
	}
}

// RenderCandidates prints the candidates report as a table
func RenderCandidates(w io.Writer, rows []CandidateRow) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Candidate", "State", ""}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, row := range rows {
		mark := ""
		if row.Selected {
			mark = CheckMark + " selected"
		}
		state := ColorizeProbeState(row.Probe.State)
		if row.Probe.Err != nil {
			state += " (" + row.Probe.Err.Error() + ")"
		}

		table.Append(
			strconv.Itoa(row.Priority),
			row.Probe.Candidate.RelPath(),
			state,
			mark,
		)
	}

	table.Render()
}
