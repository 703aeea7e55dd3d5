// Package commands implements the dittologin CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/cmd/dittologin/commands/config"
)

// Build information, set by main.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// cfgFile is the persistent --config flag.
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dittologin",
	Short: "DittoLogin - Process login user resolution",
	Long: `DittoLogin resolves the login user of the running process from the
operating system account, using the active authentication mode.

Only SIMPLE authentication resolves a login user. NOSASL, CUSTOM and
KERBEROS are recognised but rejected at login time.

Use "dittologin [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line. Errors are returned unprinted; main
// decides the exit status.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/dittologin/config.yaml)")

	rootCmd.AddCommand(whoamiCmd, platformCmd, serveCmd, config.Cmd, versionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
