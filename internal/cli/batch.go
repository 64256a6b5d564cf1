package cli

import (
	"github.com/spf13/cobra"

	"samm-mapper/internal/pipeline"
)

func newBatchCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run every model pair of a manifest concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := pipeline.LoadManifest(args[0])
			if err != nil {
				return err
			}

			settings := settingsFromContext(cmd.Context())

			limit := manifest.Concurrency
			if settings.Concurrency > 0 {
				limit = settings.Concurrency
			}

			if cmd.Flags().Changed("concurrency") {
				limit = concurrency
			}

			opts := pipeline.DefaultOptions()
			opts.YAMLReport = settings.ReportFormat == "yaml"
			opts.Logger = loggerFromContext(cmd.Context())

			prog := newProgress(opts.Logger)
			results, runErr := pipeline.RunBatch(cmd.Context(), manifest.Jobs, opts, limit)
			prog.done("Batch finished")

			w := cmd.OutOrStdout()

			for _, r := range results {
				if r.Err != nil {
					printError(w, "%s: %v", r.Job.Name, r.Err)

					continue
				}

				printSuccess(w, "%s: %d mappings", r.Job.Name, len(r.Result.Mapping.Entries))

				if r.Job.Output != "" {
					printDetail(w, "written to %s", r.Job.Output)
				}
			}

			return runErr
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "jobs running at once (0 = GOMAXPROCS)")

	return cmd
}
