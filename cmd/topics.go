package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizhive/quizgen/internal/quizgen"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics with dedicated concept lists",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := quizgen.NewConceptCatalog()

		fmt.Println("Topics with dedicated concepts (any other topic uses the universal list):")
		for _, t := range catalog.Topics() {
			fmt.Printf("  %s\n", t)
		}

		levels := make([]string, len(quizgen.Levels))
		for i, l := range quizgen.Levels {
			levels[i] = string(l)
		}
		fmt.Printf("\nLevels: %s\n", strings.Join(levels, ", "))
	},
}
