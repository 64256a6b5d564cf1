package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"samm-mapper/internal/model"
	"samm-mapper/internal/samm"
)

func newInspectCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect <model.ttl>",
		Short: "Print the flattened property tree of an aspect model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := samm.LoadFile(args[0])
			if err != nil {
				return err
			}

			cfg := model.DefaultBuilderConfig()
			cfg.Logger = loggerFromContext(cmd.Context())

			m, err := model.NewBuilder(g, cfg).Build()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if dump {
				dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				dumper.Fdump(w, m)

				return nil
			}

			printModel(w, m)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "dump the built model structure")

	return cmd
}

func printModel(w io.Writer, m *model.Model) {
	printTitle(w, m.Name)
	printKeyValue(w, "id", m.ID)
	printKeyValue(w, "meta-model", m.Version)
	printCount(w, "properties", m.Count())
	printCount(w, "composites", len(m.Composites))

	idx := model.NewIndex(m)
	for _, e := range idx.Entries {
		fmt.Fprintln(w, strings.Repeat("  ", e.Depth)+describe(e))
	}
}

func describe(e model.Entry) string {
	p := e.Property

	var attrs []string
	if p.DataType != "" {
		attrs = append(attrs, p.DataType)
	}

	if p.Unit != "" {
		attrs = append(attrs, p.Unit)
	}

	if p.Collection {
		attrs = append(attrs, strings.ToLower(p.CollectionKind))
	}

	if p.Optional {
		attrs = append(attrs, "optional")
	}

	line := styleValue.Render(p.Key())
	if len(attrs) > 0 {
		line += " " + styleDim.Render("("+strings.Join(attrs, ", ")+")")
	}

	if p.PreferredName != "" {
		line += " " + styleDim.Render(fmt.Sprintf("%q", p.PreferredName))
	}

	return line
}
