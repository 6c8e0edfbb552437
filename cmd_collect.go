package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"corp/patchaudit/core"
	"corp/patchaudit/export"
	"corp/patchaudit/probe"
)

// collect is the single-host entry point. The winrs remote channel runs
// exactly this with --json on the far side and decodes the output.
func newCollectCmd(debug *bool) *cobra.Command {
	options := struct {
		asJSON bool
		pretty bool
	}{}

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "collect posture from the local host only",
		Example: heredoc.Doc(`
		$ patchaudit collect
		$ patchaudit collect --json
		$ patchaudit collect --json --pretty
		`),
		RunE: func(_ *cobra.Command, _ []string) error {
			localHost, _ := os.Hostname()

			rep := probe.Collect(context.Background())
			rep.Host = localHost

			if options.asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetEscapeHTML(false)
				if options.pretty {
					enc.SetIndent("", "  ")
				}
				return errors.Wrap(enc.Encode(rep), "emit report")
			}

			meta := core.NewRunMetadata(toolName, version, localHost)
			meta.Finish()
			export.ConsoleSummary(os.Stdout, meta, []core.HostReport{rep})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&options.asJSON, "json", "j", false, "emit the raw report as JSON")
	cmd.Flags().BoolVarP(&options.pretty, "pretty", "", false, "pretty-print JSON output")

	return cmd
}
