package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizhive/quizgen/internal/llm"
	"github.com/quizhive/quizgen/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a question batch and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		topic, _ := cmd.Flags().GetString("topic")
		level, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")
		category, _ := cmd.Flags().GetString("category")
		keywords, _ := cmd.Flags().GetStringSlice("keyword")
		seed, _ := cmd.Flags().GetUint64("seed")
		templateOnly, _ := cmd.Flags().GetBool("template-only")

		req := quizgen.Request{
			Topic:    topic,
			Level:    quizgen.Level(level),
			Count:    count,
			Category: quizgen.Category(category),
			Keywords: keywords,
		}
		if err := req.Validate(); err != nil {
			return err
		}

		log := zap.NewNop()

		var provider llm.Provider
		if !templateOnly {
			p, err := llm.NewProviderFromEnv(cmd.Context(), nil, log)
			if err != nil {
				fmt.Fprintf(os.Stderr, "note: no model backend (%v), using templates\n", err)
			} else {
				provider = p
			}
		}

		genCfg := quizgen.DefaultConfig()
		genCfg.Seed = seed

		pipeline := quizgen.NewPipeline(genCfg, provider, log)
		questions, err := pipeline.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions for (required)")
	generateCmd.Flags().StringP("level", "l", "beginner", "Difficulty level: beginner, intermediate, advanced")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions (1-50)")
	generateCmd.Flags().StringP("category", "c", "", "Force category for the whole batch: baseline or variable")
	generateCmd.Flags().StringSliceP("keyword", "k", nil, "Keyword to focus on (repeatable)")
	generateCmd.Flags().Uint64("seed", 0, "Fixed randomness seed for reproducible template batches")
	generateCmd.Flags().Bool("template-only", false, "Skip the model backend even when configured")
	_ = generateCmd.MarkFlagRequired("topic")
}
