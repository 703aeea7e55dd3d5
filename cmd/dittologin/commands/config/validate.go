package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/login"
	"github.com/marmos91/dittologin/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Load and validate a DittoLogin configuration file.

Besides field validation, this reports whether the configured
authentication type can resolve a login user at all.

Examples:
  dittologin config validate
  dittologin config validate --config /etc/dittologin/config.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(configPath(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid")

	authType, err := auth.ParseAuthType(cfg.Security.AuthenticationType)
	if err != nil {
		return err
	}
	if err := login.CheckMode(authType); err != nil {
		fmt.Fprintf(out, "Warning: %v; login will fail\n", err)
	}
	return nil
}
