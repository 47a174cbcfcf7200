package cli

import (
	"fmt"
	"io"
	"strings"

	"resource-catalog/pkg/config"

	"github.com/pelletier/go-toml/v2"
)

// secretKeys are masked by ShowConfig
var secretKeys = map[string]bool{
	"api_key":              true,
	"secret_key":           true,
	"editor_password_hash": true,
}

// ShowConfig writes the current configuration with secrets masked
func (a *App) ShowConfig(w io.Writer) error {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		key, value, found := strings.Cut(line, " = ")
		if found && secretKeys[strings.TrimSpace(key)] && value != "''" && value != `""` {
			line = key + " = '********'"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "cli.base_url=http://localhost:8080")
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	if err := a.cfg.Set(strings.TrimSpace(parts[0]), parts[1]); err != nil {
		return err
	}
	return config.Save(a.cfg)
}
