package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var (
		verbose     bool
		settingsDir string
	)

	root := &cobra.Command{
		Use:          "samm-mapper",
		Short:        "samm-mapper generates JSONata transformations between SAMM aspect models",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}

			settings, err := LoadSettings(settingsDir)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withSettings(ctx, settings))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("samm-mapper %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&settingsDir, "env-dir", ".", "directory holding an optional .env file")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newBatchCmd())

	return root
}
