// Package fleet fans the host executor out over the target list and
// collects one report per target, in input order.
package fleet

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"corp/patchaudit/core"
	"corp/patchaudit/executor"
)

// Aggregator runs the per-target collections with a bounded worker pool.
type Aggregator struct {
	Exec    *executor.Executor
	Workers int
	Log     zerolog.Logger
}

// Run collects one HostReport per target. Results land in position-indexed
// slots, so the output order always matches the input order no matter how
// the workers interleave. One target's total failure never stops the rest.
// Once the context is cancelled no new collections are issued; targets that
// never started still get their placeholder report.
func (a *Aggregator) Run(ctx context.Context, targets []core.Target) []core.HostReport {
	workers := a.Workers
	if workers <= 0 {
		workers = 5
	}

	reports := make([]core.HostReport, len(targets))

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, t := range targets {
		// SetLimit makes Go block while the pool is full, so this check
		// fires between collections, not just once up front.
		if ctx.Err() != nil {
			reports[i] = core.FailedReport(t.Host, "cancelled: run aborted before collection started")
			continue
		}

		i, t := i, t
		g.Go(func() error {
			reports[i] = a.Exec.Collect(ctx, t)
			a.Log.Info().
				Str("host", t.Host).
				Bool("failed", reports[i].Failed()).
				Msg("target collected")
			return nil
		})
	}

	_ = g.Wait()
	return reports
}
