package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/construtiva/proposal-pipeline/internal/llm"
	"github.com/construtiva/proposal-pipeline/internal/llm/openai"
	"github.com/construtiva/proposal-pipeline/internal/proposal"
)

// organize runs the text organizer and formatter on a local text file and
// prints the formatted proposal. Useful for prompt tuning without touching
// the vendor upload path or the database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) < 2 {
		logger.Error("usage: organize <extracted-text-file>")
		os.Exit(2)
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := openai.NewClient(openai.Config{}, logger)
	organized, _, err := client.Organize(ctx, llm.OrganizeRequest{
		RawText:    string(raw),
		ContextTag: filepath.Base(os.Args[1]),
	})
	if err != nil {
		logger.Error("organize failed", "error", err)
		os.Exit(1)
	}

	formatted := proposal.Format(organized, time.Now())
	out, err := json.MarshalIndent(formatted, "", "  ")
	if err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	logger.Info("organized",
		"items", len(formatted.Items),
		"total", formatted.Total,
		"confidence", formatted.Confidence,
	)
}
