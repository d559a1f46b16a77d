// Package main provides the hermes-cli entrypoint: offline scoring of single
// values and TOML rosters, and roster upload to a running server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/DaalbuCZ/Hermes/internal/domain/scoring"
	"github.com/DaalbuCZ/Hermes/internal/roster"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
)

const (
	defaultURL     = "http://localhost:9080"
	defaultTimeout = 30 * time.Second
	tokenEnv       = "HERMES_TOKEN"
)

var (
	quickTest   string
	quickAge    int
	quickGender string

	submitURL     string
	submitToken   string
	submitWorkers int
	submitTimeout time.Duration
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hermes-cli",
		Short:        "Score athletic test results and upload rosters",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logger.Init(logger.WithWriter(cmd.ErrOrStderr()))
		},
	}
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSubmitCmd())
	return rootCmd
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score values offline",
	}
	cmd.AddCommand(newQuickCmd())
	cmd.AddCommand(newBatchCmd())
	return cmd
}

func newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quick VALUE",
		Short:   "Score one reduced value against its table",
		Example: "hermes-cli score quick --test ladder --age 15 --gender M 2.9",
		Args:    cobra.ExactArgs(1),
		RunE:    runQuickCmd,
	}
	cmd.Flags().StringVar(&quickTest, "test", "", "test type, e.g. ladder, beep_test")
	cmd.Flags().IntVar(&quickAge, "age", 0, "athlete age in years (clamped to 10-20)")
	cmd.Flags().StringVar(&quickGender, "gender", "", "M or F")
	_ = cmd.MarkFlagRequired("test")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("gender")
	return cmd
}

func runQuickCmd(cmd *cobra.Command, args []string) error {
	tt, err := scoring.ParseTestType(quickTest)
	if err != nil {
		return err
	}
	g, err := scoring.ParseGender(quickGender)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	score, err := scoring.Quick(tt, quickAge, g, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s%d %v -> %d\n", tt, g, scoring.ClampAge(quickAge), value, score)
	return nil
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch ROSTER.toml",
		Short: "Score every athlete of a roster and print a table",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatchCmd,
	}
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	r, err := roster.Load(args[0])
	if err != nil {
		return err
	}
	results, err := r.Score(time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderResults(r, results))
	return nil
}

func newSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit ROSTER.toml",
		Short: "Upload a roster to a running server",
		Args:  cobra.ExactArgs(1),
		RunE:  runSubmitCmd,
	}
	cmd.Flags().StringVar(&submitURL, "url", defaultURL, "base URL of the server")
	cmd.Flags().StringVar(&submitToken, "token", "", "bearer token (default $"+tokenEnv+")")
	cmd.Flags().IntVar(&submitWorkers, "workers", 0, "concurrent submissions (default CPU cores * 2)")
	cmd.Flags().DurationVar(&submitTimeout, "timeout", defaultTimeout, "HTTP request timeout")
	return cmd
}

func runSubmitCmd(cmd *cobra.Command, args []string) error {
	r, err := roster.Load(args[0])
	if err != nil {
		return err
	}
	token := submitToken
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	client := roster.NewClient(submitURL,
		roster.WithToken(token),
		roster.WithWorkers(submitWorkers),
		roster.WithTimeout(submitTimeout),
		roster.WithLogger(logger.Named("submit")),
	)
	stats, err := client.Upload(cmd.Context(), r, time.Now())
	fmt.Fprintf(cmd.OutOrStdout(), "athletes: %d  accepted: %d  duplicate: %d  failed: %d  (%s)\n",
		stats.Athletes, stats.Accepted, stats.Duplicate, stats.Failed, stats.Duration.Round(time.Millisecond))
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d submissions failed", stats.Failed)
	}
	return nil
}
