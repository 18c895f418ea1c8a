package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nao1215/markdown"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/toolbelt/internal/home"
	"github.com/ryan-rushton/toolbelt/internal/registry"
	"github.com/ryan-rushton/toolbelt/internal/styles"
)

var (
	listCategory string
	listSearch   string
	listMarkdown bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available tools",
	Long:    "Lists the tool catalog, filtered the same way as the home screen search and tabs",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := registry.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		tools := registry.Filter(registry.All(), c, listSearch)
		if listMarkdown {
			return writeMarkdown(cmd.OutOrStdout(), c, tools)
		}
		writeTable(cmd.OutOrStdout(), tools)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", string(registry.Any), "category: all, file, image or text")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "only tools whose name or description contains this")
	listCmd.Flags().BoolVar(&listMarkdown, "markdown", false, "print the catalog as a Markdown document")
	rootCmd.AddCommand(listCmd)
}

func writeTable(w io.Writer, tools []registry.Tool) {
	if len(tools) == 0 {
		fmt.Fprintln(w, home.NoResults)
		return
	}
	rows := make([][]string, len(tools))
	for i, t := range tools {
		rows[i] = []string{t.ID, t.Name, t.Category.Label()}
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Muted).
		Headers("ID", "NAME", "CATEGORY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintln(w, styles.Muted.Render(home.CountLine(len(tools))))
}

func writeMarkdown(w io.Writer, c registry.Category, tools []registry.Tool) error {
	md := markdown.NewMarkdown(w)
	md.H1("toolbelt tools")
	md.PlainText(home.Hero)
	md.PlainText("")
	md.H2(c.Label())
	if len(tools) == 0 {
		md.PlainText(home.NoResults)
		return md.Build()
	}
	rows := make([][]string, len(tools))
	for i, t := range tools {
		rows[i] = []string{"`" + t.ID + "`", t.Name, t.Category.Label(), t.Description}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Name", "Category", "Description"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText(home.CountLine(len(tools)))
	return md.Build()
}
