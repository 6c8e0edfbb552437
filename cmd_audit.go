package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"corp/patchaudit/core"
	"corp/patchaudit/executor"
	"corp/patchaudit/export"
	"corp/patchaudit/fleet"
	"corp/patchaudit/prioritize"
	"corp/patchaudit/probe"
)

func newAuditCmd(debug *bool) *cobra.Command {
	options := struct {
		targets     []string
		targetsFile string
		configPath  string
		workers     int
		timeoutSec  int
		output      string
		showTop     bool
		username    string
		password    string
		agentPath   string
	}{
		workers:    5,
		timeoutSec: 120,
	}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "collect patch and baseline posture from one or more hosts",
		Example: heredoc.Doc(`
		$ patchaudit audit --targets .
		$ patchaudit audit --targets HOST-A,HOST-B --username ops --output posture.csv
		$ patchaudit audit --targets-file hosts.txt --workers 10 --top
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(*debug)

			if options.configPath != "" {
				cfg, err := loadConfig(options.configPath)
				if err != nil {
					return err
				}
				flags := cmd.Flags()
				if !flags.Changed("workers") && cfg.Workers > 0 {
					options.workers = cfg.Workers
				}
				if !flags.Changed("timeout") && cfg.TimeoutSeconds > 0 {
					options.timeoutSec = cfg.TimeoutSeconds
				}
				if !flags.Changed("output") && cfg.Output != "" {
					options.output = cfg.Output
				}
				if !flags.Changed("username") && cfg.Username != "" {
					options.username = cfg.Username
				}
				if !flags.Changed("agent-path") && cfg.AgentPath != "" {
					options.agentPath = cfg.AgentPath
				}
				if len(options.targets) == 0 && options.targetsFile == "" {
					options.targets = cfg.Targets
				}
			}

			hosts := options.targets
			if options.targetsFile != "" {
				fromFile, err := loadTargetsFile(options.targetsFile)
				if err != nil {
					return err
				}
				hosts = append(hosts, fromFile...)
			}

			var cred *core.Credential
			if options.username != "" {
				cred = &core.Credential{Username: options.username, Secret: options.password}
			}

			targets := core.ParseTargets(hosts, cred)
			if len(targets) == 0 {
				// nothing to audit makes the whole run meaningless
				return errors.New("no targets resolved; use --targets, --targets-file or a config file")
			}

			localHost, _ := os.Hostname()
			meta := core.NewRunMetadata(toolName, version, localHost)

			exec := &executor.Executor{
				LocalHost: localHost,
				Local:     probe.Collect,
				Remote:    &executor.WinRSChannel{AgentPath: options.agentPath},
				Timeout:   time.Duration(options.timeoutSec) * time.Second,
				Log:       log,
			}
			agg := &fleet.Aggregator{Exec: exec, Workers: options.workers, Log: log}

			// operator abort stops issuing new collections; in-flight ones
			// are abandoned with a cancelled note
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			reports := agg.Run(ctx, targets)

			for i := range reports {
				if reports[i].Updates.Catalog == nil {
					continue
				}
				sel, err := prioritize.Top(reports[i].Updates.Catalog)
				if err != nil {
					continue
				}
				reports[i].TopMissing = sel
			}

			meta.Finish()
			export.ConsoleSummary(os.Stdout, meta, reports)
			if options.showTop {
				for i := range reports {
					if reports[i].TopMissing != nil {
						export.ConsoleTop(os.Stdout, reports[i].Host, reports[i].TopMissing)
					}
				}
			}

			if options.output != "" {
				if err := export.WriteReportsCSV(options.output, reports); err != nil {
					return err
				}
				log.Info().Str("path", options.output).Msg("report written")
			}

			// informational, not an operational failure: exit zero either way
			if core.Summarize(reports).Collected == 0 {
				log.Warn().Msg("no host collected successfully")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&options.targets, "targets", "t", nil, "host identifiers to audit (use . for the local host)")
	cmd.Flags().StringVarP(&options.targetsFile, "targets-file", "f", "", "file with one host identifier per line")
	cmd.Flags().StringVarP(&options.configPath, "config", "c", "", "optional YAML config file")
	cmd.Flags().IntVarP(&options.workers, "workers", "w", options.workers, "bounded worker pool size")
	cmd.Flags().IntVarP(&options.timeoutSec, "timeout", "", options.timeoutSec, "per-target remote timeout in seconds")
	cmd.Flags().StringVarP(&options.output, "output", "o", "", "CSV output path")
	cmd.Flags().BoolVarP(&options.showTop, "top", "", false, "print the top-10 missing updates per host")
	cmd.Flags().StringVarP(&options.username, "username", "u", "", "remote credential user")
	cmd.Flags().StringVarP(&options.password, "password", "p", "", "remote credential secret")
	cmd.Flags().StringVarP(&options.agentPath, "agent-path", "", "", "path of the agent binary on remote hosts")

	return cmd
}
