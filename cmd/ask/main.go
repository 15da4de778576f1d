// Command ask answers one catalog question from the terminal using the same
// pipeline as the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ozerg97/nestle-chat-bot/config"
	"github.com/Ozerg97/nestle-chat-bot/internal/app"
	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
	"github.com/Ozerg97/nestle-chat-bot/internal/observability"
)

var (
	latitude   float64
	longitude  float64
	outputJSON bool
	verbose    bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a catalog question from the terminal",
	Long: `ask runs one question through the catalog pipeline.

Count questions ("How many products contain sugar?") are answered from the
graph directly; everything else goes through vector search and generation.
Pass --lat and --lon to rank stores by distance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Float64Var(&latitude, "lat", 0, "user latitude in decimal degrees")
	rootCmd.Flags().Float64Var(&longitude, "lon", 0, "user longitude in decimal degrees")
	rootCmd.Flags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline steps to stderr")
	rootCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline")
	rootCmd.MarkFlagsRequiredTogether("lat", "lon")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		Output:      os.Stderr,
		ServiceName: "catalogqa-ask",
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	application, err := app.Build(ctx, cfg, nil, logger)
	if err != nil {
		return err
	}
	defer application.Close(context.Background())

	request := &domain.AskRequest{Question: strings.Join(args, " ")}
	if cmd.Flags().Changed("lat") {
		request.Location = &domain.GeoPoint{Latitude: latitude, Longitude: longitude}
	}

	answer, err := application.Questions.Answer(ctx, request)
	if err != nil {
		return err
	}

	if outputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{"answer": answer.Text, "route": string(answer.Route)})
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer.Text)
	return nil
}
