package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"

	"github.com/pkg/errors"

	"corp/patchaudit/core"
)

// WinRSChannel runs the agent binary on the remote host through winrs and
// decodes the JSON report it emits. The transport itself (WinRM) belongs to
// the hosting platform; we only shape the call.
type WinRSChannel struct {
	// AgentPath is the path of the patchaudit binary on the remote host.
	AgentPath string
}

func (c *WinRSChannel) Collect(ctx context.Context, host string, cred *core.Credential) (core.HostReport, error) {
	args := []string{"-r:" + host}
	if cred != nil && cred.Username != "" {
		args = append(args, "-u:"+cred.Username, "-p:"+cred.Secret)
	}
	agent := c.AgentPath
	if agent == "" {
		agent = "patchaudit"
	}
	args = append(args, agent, "collect", "--json")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "winrs", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return core.HostReport{}, errors.Wrapf(err, "winrs %s: %s", host, msg)
		}
		return core.HostReport{}, errors.Wrapf(err, "winrs %s", host)
	}

	var rep core.HostReport
	if err := json.Unmarshal(stdout.Bytes(), &rep); err != nil {
		return core.HostReport{}, errors.Wrapf(err, "decode report from %s", host)
	}
	return rep, nil
}
