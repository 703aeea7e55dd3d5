package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/internal/cli/output"
	"github.com/marmos91/dittologin/pkg/config"
)

var showOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and DITTOLOGIN_* environment
overrides are applied.

Examples:
  dittologin config show
  dittologin config show -o json --config /etc/dittologin/config.yaml`,
	RunE: runConfigShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml", "Output format (yaml|json)")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(showOutput)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		return fmt.Errorf("config show supports yaml or json, not %s", format)
	}

	cfg, err := config.MustLoad(configPath(cmd))
	if err != nil {
		return err
	}
	return output.NewPrinter(cmd.OutOrStdout(), format).Print(cfg)
}
