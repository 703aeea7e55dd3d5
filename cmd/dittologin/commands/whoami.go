package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/internal/cli/output"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/login"
)

var (
	whoamiOutput   string
	whoamiAuthType string
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Resolve and print the login user of this process",
	Long: `Resolve the login user of this process with the configured
authentication mode and print it.

The command exits with a non-zero status when no login user can be
resolved, for example when the authentication mode is not SIMPLE.

Examples:
  # Print the login user as a table
  dittologin whoami

  # Print as JSON
  dittologin whoami -o json

  # Try a different authentication mode
  dittologin whoami --auth-type KERBEROS`,
	RunE: runWhoami,
}

func init() {
	whoamiCmd.Flags().StringVarP(&whoamiOutput, "output", "o", "table", "Output format (table|json|yaml)")
	whoamiCmd.Flags().StringVar(&whoamiAuthType, "auth-type", "", "Override the configured authentication type")
}

// whoamiReport is the result printed by whoami.
type whoamiReport struct {
	User      string `json:"user" yaml:"user"`
	AuthType  string `json:"auth_type" yaml:"auth_type"`
	Platform  string `json:"platform" yaml:"platform"`
	Module    string `json:"module" yaml:"module"`
	Principal string `json:"principal" yaml:"principal"`
}

func (r whoamiReport) details() *output.Details {
	d := &output.Details{}
	return d.Add("User", r.User).
		Add("Auth Type", r.AuthType).
		Add("Platform", r.Platform).
		Add("Module", r.Module).
		Add("Principal", r.Principal)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(whoamiOutput)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initReportLogger(cfg); err != nil {
		return err
	}

	var opts []login.Option
	if whoamiAuthType != "" {
		authType, err := auth.ParseAuthType(whoamiAuthType)
		if err != nil {
			return err
		}
		opts = append(opts, login.WithAuthType(authType))
	}

	manager, err := login.NewManagerFromConfig(cfg, opts...)
	if err != nil {
		return err
	}

	report, err := resolveWhoami(cmd.Context(), manager)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format)
	if format == output.FormatTable {
		return printer.Print(report.details())
	}
	return printer.Print(report)
}

func resolveWhoami(ctx context.Context, manager *login.Manager) (whoamiReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	user, err := manager.LoginUser(ctx)
	if err != nil {
		return whoamiReport{}, fmt.Errorf("failed to resolve login user: %w", err)
	}

	facts := manager.Platform()
	return whoamiReport{
		User:      user.Name(),
		AuthType:  manager.AuthType().String(),
		Platform:  facts.String(),
		Module:    facts.Module().String(),
		Principal: facts.PrincipalKind().String(),
	}, nil
}
