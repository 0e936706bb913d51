// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portalbox-admin",
	Short: "Portalbox-Admin is a web-based management tool for Portalbox devices",
	Long: `Portalbox-Admin is a web-based management tool for makerspace equipment
access control: users, cards, roles, equipment, billing, and the device
authentication protocol spoken by Portalbox units.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
