package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"talentscout/internal/ai"
	"talentscout/internal/conversation"
	"talentscout/internal/export"
)

var (
	interviewOutput string
	interviewFormat string
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interview in the terminal",
	Long: `Run a screening interview interactively in the terminal. The assistant
walks through the scripted flow, asks generated technical questions and prints
a score breakdown at the end. Use --output to save the collected candidate
data to a file.`,
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().StringVarP(&interviewOutput, "output", "o", "", "Write exported candidate data to this file")
	interviewCmd.Flags().StringVarP(&interviewFormat, "format", "f", "", "Export format: json or csv (default from config)")
}

func runInterview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	format := interviewFormat
	if format == "" {
		format = cfg.App.DefaultFormat
	}

	aiService, err := ai.NewService(ctx, cfg.AI, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.LogError(err, "Failed to close AI service")
		}
	}()

	engine := conversation.NewEngine(aiService.Provider, cfg.Interview.MaxQuestions, logger)

	fmt.Println(engine.Respond(ctx, "start"))
	fmt.Println()

	prompt := promptui.Prompt{
		Label: "You",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("please type a response")
			}
			return nil
		},
	}

	for !engine.Ended() {
		input, err := prompt.Run()
		if err != nil {
			if stderrors.Is(err, promptui.ErrInterrupt) || stderrors.Is(err, promptui.ErrEOF) {
				break
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		fmt.Println()
		fmt.Println(engine.Respond(ctx, input))
		fmt.Println()
	}

	record := *engine.Record()
	if record.CompletedFieldCount() == 0 {
		return nil
	}

	score := export.ScoreInterview(record)
	fmt.Println("Interview score:")
	fmt.Printf("  Completion: %.1f\n", score.CompletionScore)
	fmt.Printf("  Response quality: %.1f\n", score.QualityScore)
	fmt.Printf("  Total: %.1f\n", score.TotalScore)
	for _, rec := range score.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}

	if interviewOutput == "" {
		return nil
	}

	data, err := export.Export(record, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(interviewOutput, []byte(data), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", interviewOutput, err)
	}
	logger.Info("Candidate data exported",
		"file", interviewOutput,
		"format", strings.ToLower(format))
	return nil
}
