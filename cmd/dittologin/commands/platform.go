package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/internal/cli/output"
	"github.com/marmos91/dittologin/pkg/auth"
	"github.com/marmos91/dittologin/pkg/auth/login"
	"github.com/marmos91/dittologin/pkg/auth/platform"
)

var platformOutput string

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Show the detected platform and its login chain",
	Long: `Show the platform facts of this process, the OS login module and
principal kind selected from them, and the provider chain SIMPLE
authentication would run.

Examples:
  dittologin platform
  dittologin platform -o yaml`,
	RunE: runPlatform,
}

func init() {
	platformCmd.Flags().StringVarP(&platformOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// platformReport is the result printed by platform.
type platformReport struct {
	OS        string   `json:"os" yaml:"os"`
	Is64Bit   bool     `json:"is_64_bit" yaml:"is_64_bit"`
	Runtime   string   `json:"runtime" yaml:"runtime"`
	Module    string   `json:"module" yaml:"module"`
	Principal string   `json:"principal" yaml:"principal"`
	Chain     []string `json:"chain" yaml:"chain"`
}

func (r platformReport) details() *output.Details {
	width := "32-bit"
	if r.Is64Bit {
		width = "64-bit"
	}
	d := &output.Details{}
	return d.Add("OS", r.OS).
		Add("Width", width).
		Add("Runtime", r.Runtime).
		Add("Module", r.Module).
		Add("Principal", r.Principal).
		Add("SIMPLE Chain", strings.Join(r.Chain, " -> "))
}

func newPlatformReport(facts platform.Facts) (platformReport, error) {
	descriptors, err := login.NewConfiguration(facts).Lookup(auth.AuthTypeSimple)
	if err != nil {
		return platformReport{}, err
	}

	chain := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		chain = append(chain, d.Name)
	}

	return platformReport{
		OS:        facts.OS.String(),
		Is64Bit:   facts.Is64Bit,
		Runtime:   facts.Runtime.String(),
		Module:    facts.Module().String(),
		Principal: facts.PrincipalKind().String(),
		Chain:     chain,
	}, nil
}

func runPlatform(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(platformOutput)
	if err != nil {
		return err
	}

	report, err := newPlatformReport(platform.Current())
	if err != nil {
		return err
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format)
	if format == output.FormatTable {
		return printer.Print(report.details())
	}
	return printer.Print(report)
}
