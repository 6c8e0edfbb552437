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
	"corp/patchaudit/prioritize"
	"corp/patchaudit/probe"
)

// top is the standalone prioritizer entry point. Unlike audit, it must fail
// clearly when the catalog cannot be obtained at all: an empty top-10 only
// ever means "fully patched", never "could not determine".
func newTopCmd(debug *bool) *cobra.Command {
	options := struct {
		input  string
		output string
	}{}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "rank the local host's missing updates, most urgent first",
		Example: heredoc.Doc(`
		$ patchaudit top
		$ patchaudit top --output top10.csv
		$ patchaudit top --input catalog.json
		`),
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger(*debug)

			host, _ := os.Hostname()
			var catalog []core.MissingUpdate

			if options.input != "" {
				// offline catalog, e.g. captured earlier with collect --json
				raw, err := os.ReadFile(options.input)
				if err != nil {
					return errors.Wrapf(err, "read catalog %s", options.input)
				}
				if err := json.Unmarshal(raw, &catalog); err != nil {
					return errors.Wrapf(err, "decode catalog %s", options.input)
				}
				catalog = prioritize.Annotate(catalog)
				host = options.input
			} else {
				rep := probe.Collect(context.Background())
				catalog = rep.Updates.Catalog
				if catalog == nil {
					if rep.Note != nil {
						log.Error().Str("note", *rep.Note).Msg("catalog unavailable")
					}
					return prioritize.ErrNoCatalog
				}
			}

			sel, err := prioritize.Top(catalog)
			if err != nil {
				return err
			}

			export.ConsoleTop(os.Stdout, host, sel)

			if options.output != "" {
				if err := export.WriteTopCSV(options.output, host, sel); err != nil {
					return err
				}
				log.Info().Str("path", options.output).Msg("selection written")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.input, "input", "i", "", "JSON catalog file instead of a live query")
	cmd.Flags().StringVarP(&options.output, "output", "o", "", "CSV output path")

	return cmd
}
