// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pentagon-api",
	Short: "pentagon-api is a role-based access control data service",
	Long: `pentagon-api is a role-based access control data service that manages
users, groups and permissions and computes the effective permission set
of a user transitively through its group memberships.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
