package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listAccount string

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stored configurations (macOS only)",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, closeAudit := newBackend("cli")
		defer closeAudit()

		entries, err := backend.List(listAccount)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No configurations stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tACCOUNT\tMODIFIED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Service, e.Account, formatTime(e.ModifiedAt))
		}
		w.Flush()
		return nil
	},
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func init() {
	listCmd.Flags().StringVarP(&listAccount, "account", "a", defaultAccount(), "account name (default: current user)")
	rootCmd.AddCommand(listCmd)
}
