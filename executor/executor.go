// Package executor dispatches one collection per target, locally or through
// a remote execution channel, and normalizes both paths (including every
// failure) into the same HostReport shape.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"corp/patchaudit/core"
)

// CollectFunc is the in-process probe set run against the current host.
type CollectFunc func(ctx context.Context) core.HostReport

// RemoteChannel runs the same read-only probe set against a remote host.
// The wire protocol is the channel's business; the contract here is a
// synchronous call that returns the record the local path would produce,
// or an error.
type RemoteChannel interface {
	Collect(ctx context.Context, host string, cred *core.Credential) (core.HostReport, error)
}

// Executor produces exactly one HostReport per target. Nothing escapes its
// boundary: panics and errors become failed reports with a note.
type Executor struct {
	// LocalHost is the current host's identifier, resolved once at process
	// start. The locality decision compares against it, "." and "localhost".
	LocalHost string
	Local     CollectFunc
	Remote    RemoteChannel
	// Timeout bounds a single remote call. Zero means no extra bound beyond
	// the caller's context.
	Timeout time.Duration
	Log     zerolog.Logger
}

// Collect gathers one report for the target. Local targets run the probe
// set in-process; everything else goes through the remote channel.
func (e *Executor) Collect(ctx context.Context, t core.Target) (rep core.HostReport) {
	defer func() {
		if r := recover(); r != nil {
			rep = core.FailedReport(t.Host, fmt.Sprintf("failed to connect or execute: panic: %v", r))
		}
	}()

	if t.IsLocal(e.LocalHost) {
		return e.collectLocal(ctx, t)
	}
	return e.collectRemote(ctx, t)
}

func (e *Executor) collectLocal(ctx context.Context, t core.Target) core.HostReport {
	e.Log.Debug().Str("host", t.Host).Msg("collecting locally")

	rep := e.Local(ctx)
	rep.Host = t.Host
	return rep
}

func (e *Executor) collectRemote(ctx context.Context, t core.Target) core.HostReport {
	if e.Remote == nil {
		return core.FailedReport(t.Host, "failed to connect or execute: no remote execution channel configured")
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	e.Log.Debug().Str("host", t.Host).Msg("collecting remotely")

	rep, err := e.Remote.Collect(ctx, t.Host, t.Credential)
	if err != nil {
		note := fmt.Sprintf("failed to connect or execute: %v", err)
		if ctx.Err() == context.Canceled {
			note = fmt.Sprintf("cancelled: %v", err)
		}
		e.Log.Warn().Str("host", t.Host).Err(err).Msg("remote collection failed")
		return core.FailedReport(t.Host, note)
	}

	rep.Host = t.Host
	return rep
}
