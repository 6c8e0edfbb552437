package executor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"corp/patchaudit/core"
)

type fakeChannel struct {
	calls  []string
	creds  []*core.Credential
	report core.HostReport
	err    error
	delay  time.Duration
}

func (f *fakeChannel) Collect(ctx context.Context, host string, cred *core.Credential) (core.HostReport, error) {
	f.calls = append(f.calls, host)
	f.creds = append(f.creds, cred)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return core.HostReport{}, ctx.Err()
		}
	}
	return f.report, f.err
}

func localReport(caption string) CollectFunc {
	return func(context.Context) core.HostReport {
		r := core.HostReport{OS: core.OSIdentity{Caption: core.Str(caption)}}
		r.Stamp()
		return r
	}
}

func newExecutor(local CollectFunc, remote RemoteChannel) *Executor {
	return &Executor{
		LocalHost: "WS01",
		Local:     local,
		Remote:    remote,
		Log:       zerolog.Nop(),
	}
}

func TestCollect_LocalDispatch(t *testing.T) {
	remote := &fakeChannel{}
	e := newExecutor(localReport("local os"), remote)

	for _, host := range []string{".", "localhost", "ws01", "WS01"} {
		rep := e.Collect(context.Background(), core.Target{Host: host})
		if core.SafeS(rep.OS.Caption) != "local os" {
			t.Errorf("target %q: expected local path, got %+v", host, rep)
		}
		if rep.Host != host {
			t.Errorf("target %q: host not set on report: %q", host, rep.Host)
		}
	}
	if len(remote.calls) != 0 {
		t.Errorf("remote channel called for local targets: %v", remote.calls)
	}
}

func TestCollect_RemoteDispatchPassesCredential(t *testing.T) {
	cred := &core.Credential{Username: "ops"}
	remote := &fakeChannel{report: core.HostReport{OS: core.OSIdentity{Caption: core.Str("remote os")}}}
	e := newExecutor(localReport("local os"), remote)

	rep := e.Collect(context.Background(), core.Target{Host: "HOST-A", Credential: cred})

	if core.SafeS(rep.OS.Caption) != "remote os" {
		t.Fatalf("expected remote path, got %+v", rep)
	}
	if rep.Host != "HOST-A" {
		t.Errorf("host not normalized onto report: %q", rep.Host)
	}
	if len(remote.calls) != 1 || remote.calls[0] != "HOST-A" {
		t.Errorf("remote calls: %v", remote.calls)
	}
	if remote.creds[0] != cred {
		t.Error("credential handle not passed through")
	}
}

func TestCollect_RemoteFailureBecomesFailedReport(t *testing.T) {
	remote := &fakeChannel{err: errors.New("access denied")}
	e := newExecutor(localReport("x"), remote)

	rep := e.Collect(context.Background(), core.Target{Host: "HOST-A"})

	if !rep.Failed() {
		t.Fatalf("expected failed shape, got %+v", rep)
	}
	note := core.SafeS(rep.Note)
	if !strings.HasPrefix(note, "failed to connect or execute:") || !strings.Contains(note, "access denied") {
		t.Errorf("note: %q", note)
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("failed report missing generation timestamp")
	}
}

func TestCollect_RemoteTimeoutSameFailedShape(t *testing.T) {
	remote := &fakeChannel{delay: time.Second}
	e := newExecutor(localReport("x"), remote)
	e.Timeout = 10 * time.Millisecond

	rep := e.Collect(context.Background(), core.Target{Host: "HOST-A"})

	if !rep.Failed() {
		t.Fatalf("expected failed shape on timeout, got %+v", rep)
	}
	if !strings.HasPrefix(core.SafeS(rep.Note), "failed to connect or execute:") {
		t.Errorf("note: %q", core.SafeS(rep.Note))
	}
}

func TestCollect_CancellationNote(t *testing.T) {
	remote := &fakeChannel{delay: time.Second}
	e := newExecutor(localReport("x"), remote)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	rep := e.Collect(ctx, core.Target{Host: "HOST-A"})

	if !rep.Failed() {
		t.Fatalf("expected failed shape, got %+v", rep)
	}
	if !strings.HasPrefix(core.SafeS(rep.Note), "cancelled:") {
		t.Errorf("note: %q", core.SafeS(rep.Note))
	}
}

func TestCollect_NoRemoteChannelConfigured(t *testing.T) {
	e := newExecutor(localReport("x"), nil)
	rep := e.Collect(context.Background(), core.Target{Host: "HOST-A"})
	if !rep.Failed() || !strings.Contains(core.SafeS(rep.Note), "no remote execution channel") {
		t.Errorf("report: %+v", rep)
	}
}

func TestCollect_LocalPanicIsCaught(t *testing.T) {
	e := newExecutor(func(context.Context) core.HostReport {
		panic("wmi exploded")
	}, nil)

	rep := e.Collect(context.Background(), core.Target{Host: "."})

	if !rep.Failed() {
		t.Fatalf("expected failed shape, got %+v", rep)
	}
	note := core.SafeS(rep.Note)
	if !strings.HasPrefix(note, "failed to connect or execute:") || !strings.Contains(note, "wmi exploded") {
		t.Errorf("note: %q", note)
	}
	if rep.Host != "." {
		t.Errorf("host: %q", rep.Host)
	}
}
