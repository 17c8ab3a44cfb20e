package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "community-platform",
	Short: "Community platform API server",
	Long: `API server for the community website: certificate issuance and
verification, certificate template management, roster imports, and the
site's event/team/partner records.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command (used by tests)
func GetRootCmd() *cobra.Command {
	return rootCmd
}
