package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"samm-mapper/internal/apply"
)

func newApplyCmd() *cobra.Command {
	var (
		transformation string
		input          string
		output         string
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   "Evaluate a transformation against an instance document",
		Example: `  samm-mapper apply -x output/transformation.jsonata -i instance.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := os.ReadFile(transformation)
			if err != nil {
				return fmt.Errorf("reading transformation: %w", err)
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading input document: %w", err)
			}

			e, err := apply.Compile(string(expr))
			if err != nil {
				return err
			}

			out, err := e.EvaluateJSON(data)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)

				return err
			}

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}

			printSuccess(cmd.OutOrStdout(), "transformed %s", input)
			printFile(cmd.OutOrStdout(), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&transformation, "transformation", "x", "", "transformation file")
	cmd.Flags().StringVarP(&input, "input", "i", "", "source instance document (JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "result file; stdout when empty")

	_ = cmd.MarkFlagRequired("transformation")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
