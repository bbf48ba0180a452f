package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benaskins/scfg/internal/codec"
	"github.com/benaskins/scfg/internal/secrets"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scfg",
	Short: "Manage JSON configuration blobs in the macOS Keychain",
	Long: `Manage named JSON configuration blobs in the macOS Keychain, or load
them from a plain file on platforms without a credential store.

WARNING: overwrite and delete operations do not require authentication.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// exitCode maps each error kind to a distinct non-zero process exit, so
// scripts can tell "not found" from "malformed" without parsing stderr.
func exitCode(err error) int {
	switch {
	case errors.Is(err, secrets.ErrConfiguration):
		return 2
	case errors.Is(err, secrets.ErrNotFound):
		return 3
	case errors.Is(err, codec.ErrDecode):
		return 4
	case errors.Is(err, codec.ErrMalformedPayload):
		return 5
	case errors.Is(err, secrets.ErrUnsupported):
		return 6
	case errors.Is(err, secrets.ErrBackend):
		return 7
	case errors.Is(err, secrets.ErrIO):
		return 8
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
