package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"samm-mapper/internal/mapping"
	"samm-mapper/internal/pipeline"
)

// mappingFlags are shared by the commands that run the matcher.
type mappingFlags struct {
	mapping     string
	threshold   float64
	collections string
}

func (f *mappingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mapping, "mapping", "m", "", "mapping file (YAML or TOML)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "minimum match confidence (overrides the mapping file)")
	cmd.Flags().StringVar(&f.collections, "collections", "", "collection style: parallel or objects")
}

// options resolves the pipeline options: defaults, then the mapping file,
// then settings and flags.
func (f *mappingFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	ctx := cmd.Context()
	settings := settingsFromContext(ctx)

	opts := pipeline.DefaultOptions()

	path := f.mapping
	if path == "" {
		path = settings.Mapping
	}

	if path != "" {
		file, err := mapping.LoadFile(path)
		if err != nil {
			return opts, err
		}

		opts = pipeline.OptionsFromFile(file)
	}

	if cmd.Flags().Changed("threshold") {
		if f.threshold < 0 || f.threshold > 1 {
			return opts, fmt.Errorf("threshold %v out of range [0, 1]", f.threshold)
		}

		opts.Resolution.Match.Threshold = f.threshold
	}

	style := f.collections
	if style == "" {
		style = settings.Collections
	}

	if style != "" {
		cs := mapping.CollectionStyle(style)
		if !cs.Valid() {
			return opts, fmt.Errorf("unknown collection style %q", style)
		}

		opts.Generator.Collections = cs
	}

	opts.YAMLReport = settings.ReportFormat == "yaml"
	opts.Logger = loggerFromContext(ctx)

	return opts, nil
}
