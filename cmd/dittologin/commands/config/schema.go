package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/marmos91/dittologin/pkg/config"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schema for IDE/validation",
	Long: `Generate a JSON schema describing the DittoLogin configuration file.

Editors with YAML language server support can use it for completion and
validation.

Examples:
  # Print schema to stdout
  dittologin config schema

  # Write schema to a file
  dittologin config schema --output dittologin.schema.json`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write schema to file instead of stdout")
}

// configSchema reflects the configuration struct using its yaml field names.
func configSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		AllowAdditionalProperties:  false,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&config.Config{})
	s.Title = "DittoLogin configuration"
	return s
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := json.MarshalIndent(configSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')

	if schemaOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(schemaOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", schemaOutput)
	return nil
}
