package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample DittoLogin configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/dittologin/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  dittologin config init

  # Initialize with custom path
  dittologin config init --config /etc/dittologin/config.yaml

  # Force overwrite existing config
  dittologin config init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)

	var err error
	if path != "" {
		err = config.InitConfigToPath(path, initForce)
	} else {
		path, err = config.InitConfig(initForce)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration file created at: %s\n", path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit the configuration file to choose the authentication type")
	fmt.Fprintln(out, "  2. Check the login user with: dittologin whoami")
	fmt.Fprintf(out, "  3. Serve the API with: dittologin serve --config %s\n", path)
	return nil
}
