package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathforge/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse operations and levels",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all operations (optionally filtered by category or grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		grade, _ := cmd.Flags().GetString("grade")

		var ops []catalog.Operation

		switch {
		case category != "" && grade != "":
			return fmt.Errorf("use --category or --grade, not both")
		case category != "":
			ops = catalog.ByCategory(catalog.Category(category))
			if len(ops) == 0 {
				return fmt.Errorf("no operations found for category %q", category)
			}
		case grade != "":
			ops = catalog.ByGrade(grade)
			if len(ops) == 0 {
				return fmt.Errorf("no operations found for grade %q", grade)
			}
		default:
			ops = catalog.AllOperations()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-32s  %-10s  %-8s  %s\n", "Operation", "Category", "Grades", "Tags")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, op := range ops {
			md := catalog.MetadataFor(op)
			grades := md.Grades[0]
			if len(md.Grades) > 1 {
				grades += "-" + md.Grades[len(md.Grades)-1]
			}
			fmt.Fprintf(out, "%-32s  %-10s  %-8s  %s\n",
				op, catalog.CategoryDisplayName(md.Category), grades, strings.Join(md.Tags, ", "))
		}

		fmt.Fprintf(out, "\n%d operations\n", len(ops))
		return nil
	},
}

var catalogLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty levels and their scores",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, l := range catalog.AllLevels() {
			fmt.Fprintf(out, "%-8s  %-8s  difficulty %d\n", l, l.DisplayName(), catalog.Difficulty(l))
		}
	},
}

func init() {
	catalogListCmd.Flags().String("category", "", "Filter by category: basics, core, advanced, applied, algebra, challenge")
	catalogListCmd.Flags().String("grade", "", "Filter by grade: K, 1-8")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogLevelsCmd)
}
