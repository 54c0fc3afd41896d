package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "events",
	Short: "Festivals Morocco events service",
	Long:  `Events service for the Festivals Morocco site: serves the normalized event catalog over HTTP and keeps the snapshot fresh from the source spreadsheet`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
