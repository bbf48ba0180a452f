package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benaskins/scfg/internal/codec"
	"github.com/benaskins/scfg/internal/secrets"
)

var (
	loadAccount string
	loadService string
	loadFile    string
	loadMirror  bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a configuration",
	Long: `Load the configuration for a service and print it to stdout.

On macOS the payload comes from the Keychain entry for the account and
service. On other platforms it is read from the JSON file given with -f.
With --store, the decoded document is also written to the configured mirror
file (default: config.json in the working directory).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, closeAudit := newBackend("cli")
		defer closeAudit()

		opts := secrets.LoadOptions{Filename: loadFile}
		if loadMirror {
			opts.MirrorPath = toolConfig().Mirror()
		}

		value, err := backend.Load(loadAccount, loadService, opts)
		if err != nil {
			return err
		}
		if opts.MirrorPath != "" {
			slog.Info("configuration mirrored", "path", opts.MirrorPath)
		}
		return printJSON(cmd.OutOrStdout(), value)
	},
}

// printJSON renders a payload: indented for humans on a terminal, compact
// when piped or redirected so the output can feed other tools. The check is
// against the writer actually used, not process stdout.
func printJSON(w io.Writer, v any) error {
	indent := false
	if f, ok := w.(*os.File); ok {
		indent = term.IsTerminal(int(f.Fd()))
	}

	var out []byte
	var err error
	if indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = codec.SerializeJSON(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func init() {
	loadCmd.Flags().StringVarP(&loadAccount, "account", "a", defaultAccount(), "account name (default: current user)")
	loadCmd.Flags().StringVarP(&loadService, "service", "s", "", "service name")
	loadCmd.Flags().StringVarP(&loadFile, "file", "f", "config.json", "configuration file (non-macOS only)")
	loadCmd.Flags().BoolVar(&loadMirror, "store", false, "also write the decoded document to the mirror file (macOS only)")
	loadCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(loadCmd)
}
