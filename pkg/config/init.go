package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const configHeader = `# DittoLogin Configuration File
#
# Every value can be overridden with a DITTOLOGIN_* environment variable,
# e.g. DITTOLOGIN_SECURITY_AUTHENTICATION_TYPE=SIMPLE or DITTOLOGIN_LOGGING_LEVEL=DEBUG.
#
# security.authentication_type: NOSASL, SIMPLE, CUSTOM or KERBEROS.
# Only SIMPLE resolves a login user; KERBEROS is reserved.

`

// InitConfig writes a default configuration file to the default location.
//
// Returns the path of the written file. Fails if the file already exists
// unless force is set.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes a default configuration file to path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(GetDefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	return writeConfigFile(path, append([]byte(configHeader), data...))
}
