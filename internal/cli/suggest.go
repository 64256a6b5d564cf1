package cli

import (
	"github.com/spf13/cobra"

	"samm-mapper/internal/mapping"
	"samm-mapper/internal/pipeline"
	"samm-mapper/internal/plan"
)

func newSuggestCmd() *cobra.Command {
	var (
		flags  mappingFlags
		source string
		target string
		output string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Write the accepted matches as an overrides file for review",
		Long: `Runs the matcher and writes every accepted pair as an override. Edit the
file and pass it back with --mapping to pin the mapping.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			res, err := pipeline.RunFiles(cmd.Context(), source, target, opts)
			if err != nil {
				return err
			}

			file := plan.ExportSuggestions(res.Mapping, opts.Resolution)
			file.Collections = opts.Generator.Collections

			w := cmd.OutOrStdout()

			if output == "" {
				data, err := mapping.Marshal(file, mapping.FormatYAML)
				if err != nil {
					return err
				}

				_, err = w.Write(data)

				return err
			}

			if err := mapping.WriteFile(file, output); err != nil {
				return err
			}

			printSuccess(w, "%d overrides suggested", len(file.Overrides))
			printFile(w, output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source aspect model (Turtle)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target aspect model (Turtle)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "overrides file (.yaml or .toml); stdout when empty")
	flags.register(cmd)

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
