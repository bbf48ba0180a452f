package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benaskins/scfg/internal/secrets"
	"github.com/benaskins/scfg/internal/watch"
)

var (
	storeAccount string
	storeService string
	storeFile    string
	storeWatch   bool
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a configuration in the Keychain (macOS only)",
	Long: `Read a JSON file and store its base64-encoded contents as the Keychain
entry for the account and service, overwriting any existing entry.
Pass "-f -" to read the document from stdin instead of a file.

With --watch, keep running and re-store the file every time it changes,
until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, closeAudit := newBackend(actorFor(storeWatch))
		defer closeAudit()

		if storeFile == "-" {
			if storeWatch {
				return fmt.Errorf("%w: --watch cannot read from stdin", secrets.ErrConfiguration)
			}
			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintln(os.Stderr, "Reading configuration from stdin; finish with Ctrl-D")
			}
			if err := storeFromReader(backend, storeAccount, storeService, os.Stdin); err != nil {
				return err
			}
			fmt.Printf("Configuration stored: stdin -> %s/%s\n", storeAccount, storeService)
			return nil
		}

		if storeWatch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch.KeepStored(ctx, backend, storeAccount, storeService, storeFile, slog.Default())
		}

		if err := backend.Store(storeAccount, storeService, storeFile); err != nil {
			return err
		}
		fmt.Printf("Configuration stored: %s -> %s/%s\n", storeFile, storeAccount, storeService)
		return nil
	},
}

// storeFromReader stores a document piped in rather than named by path.
func storeFromReader(b secrets.Backend, account, service string, in io.Reader) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("%w: reading stdin: %v", secrets.ErrIO, err)
	}
	return b.StoreBytes(account, service, raw)
}

func actorFor(watching bool) string {
	if watching {
		return "watch"
	}
	return "cli"
}

func init() {
	storeCmd.Flags().StringVarP(&storeAccount, "account", "a", defaultAccount(), "account name (default: current user)")
	storeCmd.Flags().StringVarP(&storeService, "service", "s", "", "service name")
	storeCmd.Flags().StringVarP(&storeFile, "file", "f", "", "configuration file to store, or - for stdin")
	storeCmd.Flags().BoolVar(&storeWatch, "watch", false, "keep the entry in sync with the file until interrupted")
	storeCmd.MarkFlagRequired("service")
	storeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(storeCmd)
}
