package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteAccount string
	deleteService string
)

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete a stored configuration (macOS only)",
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, closeAudit := newBackend("cli")
		defer closeAudit()

		if err := backend.Delete(deleteAccount, deleteService); err != nil {
			return err
		}
		fmt.Printf("Configuration %s/%s deleted\n", deleteAccount, deleteService)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteAccount, "account", "a", defaultAccount(), "account name (default: current user)")
	deleteCmd.Flags().StringVarP(&deleteService, "service", "s", "", "service name")
	deleteCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(deleteCmd)
}
