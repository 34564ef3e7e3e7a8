package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/locate/internal/publish"
	"github.com/quantmind-br/locate/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCandidatesCmd creates the candidates command
func NewCandidatesCmd(log *zerolog.Logger, rt Runtime, root *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Show every candidate location in search order",
		Long: `Probe every candidate location without stopping at the first match and
show which one a publish run would select. Nothing is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			searchRoot, err := resolveRoot(rt, *root)
			if err != nil {
				return fmt.Errorf("search root: %w", err)
			}

			probes, err := publish.Scan(cmd.Context(), rt.Fs, searchRoot, rt.Layout)
			if err != nil {
				return fmt.Errorf("scan candidates: %w", err)
			}

			selected := publish.FirstExisting(probes)
			rows := make([]ui.CandidateRow, 0, len(probes))
			for i, p := range probes {
				rows = append(rows, ui.CandidateRow{
					Priority: i + 1,
					Probe:    p,
					Selected: i == selected,
				})
			}

			ui.PrintHeader(out, "Candidates")
			ui.PrintKeyValue(out, "Search root", searchRoot)
			fmt.Fprintln(out)
			ui.RenderCandidates(out, rows)
			fmt.Fprintln(out)

			if selected < 0 {
				ui.PrintWarning(out, "no candidate exists, a publish run would fail")
			} else {
				name := probes[selected].Candidate.Name
				ui.PrintInfo(out, "would link %s to %s",
					probes[selected].Candidate.Path, rt.Layout.PublishTarget(searchRoot, name))
			}

			hints := publish.NearMisses(rt.Fs, searchRoot, rt.Layout)
			if len(hints) > 0 {
				items := make([]string, 0, len(hints))
				for _, h := range hints {
					items = append(items, filepath.Join(h.Dir, h.File))
				}
				fmt.Fprintln(out)
				ui.PrintInfo(out, "similar files that are not searched for:")
				ui.PrintList(out, items)
			}

			log.Debug().Int("candidates", len(probes)).Int("hints", len(hints)).Msg("candidates listed")
			return nil
		},
	}

	return cmd
}
