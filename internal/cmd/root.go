package cmd

import (
	"github.com/quantmind-br/locate/internal/config"
	"github.com/quantmind-br/locate/internal/core"
	"github.com/quantmind-br/locate/internal/paths"
	"github.com/quantmind-br/locate/internal/publish"
	"github.com/quantmind-br/locate/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Runtime holds what commands need from the outside world
type Runtime struct {
	Fs          afero.Fs
	Layout      paths.Layout
	ResolveRoot func() (string, error) // Used when no root is configured
}

// DefaultRuntime operates on the real filesystem rooted next to the
// running executable
func DefaultRuntime() Runtime {
	return Runtime{
		Fs:          afero.NewOsFs(),
		Layout:      paths.DefaultLayout(),
		ResolveRoot: paths.ResolveSearchRoot,
	}
}

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string, rt Runtime) *cobra.Command {
	var (
		strict bool
		root   string
	)

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Publish the core2dump build result for npm",
		Long: `Find the core2dump executable among the known build output directories
and link it at npm/core2dump so the npm package has a fixed entry point.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			searchRoot, err := resolveRoot(rt, root)
			if err != nil {
				log.Error().Err(err).Msg("cannot determine search root")
				return &ExitError{Code: core.ExitInvalidArgs, Err: err}
			}

			publisher := publish.New(rt.Fs, log, ui.NewReporter(cmd.ErrOrStderr()), core.PublishOptions{
				StrictProbe: strict,
				StrictLink:  strict,
			})

			res := publisher.Run(cmd.Context(), searchRoot, rt.Layout)
			log.Debug().
				Str("state", string(res.State)).
				Str("root", res.Root).
				Int("probed", len(res.Probes)).
				Msg("publish finished")

			if code := res.ExitCode(); code != core.ExitSuccess {
				return &ExitError{Code: code, Err: res.Err}
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&root, "root", cfg.Publish.Root, "search root (defaults to the parent of the executable's directory)")
	cmd.Flags().BoolVar(&strict, "strict", cfg.Publish.Strict, "fail on probe errors and report link failures through the exit code")

	cmd.AddCommand(NewCandidatesCmd(log, rt, &root))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

// resolveRoot prefers an explicit root over the executable location
func resolveRoot(rt Runtime, explicit string) (string, error) {
	if explicit != "" {
		return paths.NormalizeRoot(explicit)
	}
	return rt.ResolveRoot()
}
