package publish

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/locate/internal/core"
	"github.com/quantmind-br/locate/internal/fsops"
	"github.com/quantmind-br/locate/internal/paths"
	"github.com/quantmind-br/locate/internal/transaction"
	"github.com/quantmind-br/locate/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Publisher finds the first existing build artifact and links it at the
// publish target
type Publisher struct {
	fs       afero.Fs
	logger   *zerolog.Logger
	reporter *ui.Reporter
	opts     core.PublishOptions
}

// New creates a publisher operating on fs
func New(fs afero.Fs, log *zerolog.Logger, reporter *ui.Reporter, opts core.PublishOptions) *Publisher {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Publisher{
		fs:       fs,
		logger:   log,
		reporter: reporter,
		opts:     opts,
	}
}

// Result describes a finished run
type Result struct {
	State    core.State
	Root     string
	Probes   []core.Probe    // Candidates checked, in order
	Selected *core.Candidate // Nil unless an artifact was found
	Target   string          // Publish target of the selected artifact

	RemoveErr error // Failure removing a stale target, never fatal
	LinkErr   error // Failure creating the link
	Err       error // Why the search ended without a selection

	strictLink bool
}

// Linked reports whether the link was created
func (r *Result) Linked() bool {
	return r.State == core.StatePublished && r.LinkErr == nil
}

// ExitCode maps the result to a process exit status. A found artifact is a
// success even when linking failed, unless strict linking was requested.
func (r *Result) ExitCode() int {
	switch r.State {
	case core.StatePublished:
		if r.LinkErr != nil && r.strictLink {
			return core.ExitPublishFailed
		}
		return core.ExitSuccess
	case core.StateExhausted:
		var probeErr *ProbeError
		switch {
		case errors.Is(r.Err, ErrRelativeRoot):
			return core.ExitInvalidArgs
		case errors.Is(r.Err, context.Canceled), errors.Is(r.Err, context.DeadlineExceeded):
			return core.ExitInterrupted
		case errors.As(r.Err, &probeErr):
			return core.ExitPublishFailed
		}
	}
	return core.ExitNotFound
}

// Run searches root following layout and publishes the first hit
func (p *Publisher) Run(ctx context.Context, root string, layout paths.Layout) *Result {
	res := &Result{
		State:      core.StateSearching,
		Root:       root,
		strictLink: p.opts.StrictLink,
	}

	if !filepath.IsAbs(root) {
		res.State = core.StateExhausted
		res.Err = fmt.Errorf("%w: %q", ErrRelativeRoot, root)
		return res
	}
	root = filepath.Clean(root)
	res.Root = root

	selected, err := p.search(ctx, root, layout, res)
	if selected == nil {
		res.State = core.StateExhausted
		res.Err = err
		if errors.Is(err, ErrNotFound) {
			p.reporter.NotFound()
		}
		return res
	}

	res.State = core.StateFound
	res.Selected = selected
	res.Target = layout.PublishTarget(root, selected.Name)
	p.publish(res)
	res.State = core.StatePublished

	return res
}

// search probes candidates in order and stops at the first existing one
func (p *Publisher) search(ctx context.Context, root string, layout paths.Layout, res *Result) (*core.Candidate, error) {
	for _, c := range layout.Candidates(root) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state, err := fsops.Probe(p.fs, c.Path)
		res.Probes = append(res.Probes, core.Probe{Candidate: c, State: state, Err: err})

		switch state {
		case core.ProbeExists:
			p.logger.Debug().Str("path", c.Path).Msg("candidate exists")
			return &c, nil
		case core.ProbeFailed:
			probeErr := &ProbeError{Path: c.Path, Err: err}
			if p.opts.StrictProbe {
				p.logger.Error().Err(err).Str("path", c.Path).Msg("candidate probe failed")
				return nil, probeErr
			}
			p.logger.Warn().Err(err).Str("path", c.Path).Msg("candidate probe failed, skipping")
		default:
			p.logger.Debug().Str("path", c.Path).Msg("candidate absent")
		}
	}
	return nil, ErrNotFound
}

// publish replaces the target with a link to the selected candidate.
// Failures are recorded in res, never returned.
func (p *Publisher) publish(res *Result) {
	src := res.Selected.Path
	target := res.Target
	p.reporter.Found(src)

	tx := transaction.NewManager(p.logger)
	if p.opts.StrictLink {
		p.rememberPrevious(tx, target)
	}

	if err := fsops.RemoveIfExists(p.fs, target); err != nil {
		res.RemoveErr = err
		p.logger.Warn().Err(err).Str("target", target).Msg("failed to remove previous target")
	}

	p.reporter.Linking(src, target)
	if err := fsops.Symlink(p.fs, src, target); err != nil {
		res.LinkErr = err
		p.logger.Warn().Err(err).Str("source", src).Str("target", target).Msg("failed to create link")
		if err := tx.Rollback(); err != nil {
			p.logger.Warn().Err(err).Str("target", target).Msg("failed to restore previous link")
		}
		return
	}
	tx.Commit()

	p.logger.Debug().Str("source", src).Str("target", target).Msg("artifact published")
}

// rememberPrevious registers restoring an existing link at target
func (p *Publisher) rememberPrevious(tx *transaction.Manager, target string) {
	if !fsops.Lexists(p.fs, target) {
		return
	}
	prev, err := fsops.Readlink(p.fs, target)
	if err != nil {
		p.logger.Debug().Err(err).Str("target", target).Msg("previous target is not a link, cannot restore it")
		return
	}
	tx.Add("restore previous link", func() error {
		if fsops.Lexists(p.fs, target) {
			return nil
		}
		return fsops.Symlink(p.fs, prev, target)
	})
}
