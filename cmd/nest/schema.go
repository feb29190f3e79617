package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/desertwitch/nest/internal/schema"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	rootStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	directoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
)

func newSchemaCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the schema",
		Long: `Print the schema as a tree of directories and files, or as a schema
definition in the given --format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "" {
				return printValue(cmd.OutOrStdout(), a.store.Schema().Value(), format)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderSchema(a.store.Root(), a.store.Schema()))

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "print the definition in this format instead of a tree")

	return cmd
}

func renderSchema(label string, sch *schema.Schema) string {
	if sch.IsLeaf() {
		return rootStyle.Render(label + "." + sch.Codec().ID())
	}

	return schemaTree(label, sch).
		RootStyle(rootStyle).
		EnumeratorStyle(enumeratorStyle).
		String()
}

func schemaTree(label string, sch *schema.Schema) *tree.Tree {
	t := tree.Root(label)

	for _, child := range sch.Children() {
		if child.Schema.IsLeaf() {
			t.Child(child.Name + "." + child.Schema.Codec().ID())

			continue
		}

		sub := schemaTree(directoryStyle.Render(child.Name+"/"), child.Schema).
			EnumeratorStyle(enumeratorStyle)
		t.Child(sub)
	}

	return t
}
