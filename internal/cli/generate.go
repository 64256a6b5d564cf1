package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"samm-mapper/internal/gen"
	"samm-mapper/internal/pipeline"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags        mappingFlags
		source       string
		target       string
		output       string
		reportFormat string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Match two aspect models and write the transformation and report",
		Example: `  samm-mapper generate --source pcf.ttl --target footprint.ttl
  samm-mapper generate -s pcf.ttl -t footprint.ttl -m mapping.yaml -o out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			settings := settingsFromContext(cmd.Context())
			if output == "" {
				output = settings.Output
			}

			switch reportFormat {
			case "":
			case "json", "yaml":
				opts.YAMLReport = reportFormat == "yaml"
			default:
				return fmt.Errorf("unknown report format %q", reportFormat)
			}

			prog := newProgress(opts.Logger)

			res, err := pipeline.RunFiles(cmd.Context(), source, target, opts)
			if err != nil {
				return err
			}

			if err := res.WriteFiles(output, opts.YAMLReport); err != nil {
				return err
			}

			prog.done("Generated transformation")

			w := cmd.OutOrStdout()
			printSummary(cmd, res)

			report := gen.ReportJSONFile
			if opts.YAMLReport {
				report = gen.ReportYAMLFile
			}

			printFile(w, filepath.Join(output, gen.ExpressionFile))
			printFile(w, filepath.Join(output, report))

			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source aspect model (Turtle)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target aspect model (Turtle)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&reportFormat, "report-format", "", "report format: json or yaml")
	flags.register(cmd)

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func printSummary(cmd *cobra.Command, res *pipeline.Result) {
	w := cmd.OutOrStdout()
	meta := res.Output.Report.Metadata

	printSuccess(w, "%s %s %s", meta.SourceAspect, iconArrow, meta.TargetAspect)
	printCount(w, "mappings", meta.TotalMappings)
	printCount(w, "unmapped source", len(res.Mapping.UnmappedSource))
	printCount(w, "unmapped target", len(res.Mapping.UnmappedTarget))
	printKeyValue(w, "avg confidence", fmt.Sprintf("%.2f", meta.AverageConfidence))

	for _, d := range res.Output.Report.Warnings {
		printWarning(w, "%s %s: %s", d.Kind, d.Property, d.Message)
	}

	for _, d := range res.Output.Report.Infos {
		printInfo(w, "%s %s: %s", d.Kind, d.Property, d.Message)
	}
}
