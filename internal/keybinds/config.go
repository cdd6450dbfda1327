package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration. Each section maps
// an action name to a comma separated list of keys.
type Config struct {
	Version  string            `json:"version"`
	Global   map[string]string `json:"global,omitempty"`
	Editor   map[string]string `json:"editor,omitempty"`
	Rename   map[string]string `json:"rename,omitempty"`
	Confirm  map[string]string `json:"confirm,omitempty"`
	Switcher map[string]string `json:"switcher,omitempty"`
	Help     map[string]string `json:"help,omitempty"`
}

const configHeader = `// editpad keybindings
// Each section maps an action to a comma separated list of keys.
// Sections: global, editor, rename, confirm, switcher, help.
// Comments and trailing commas are allowed.
`

// sections pairs each context with its config map
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:   c.Global,
		ContextEditor:   c.Editor,
		ContextRename:   c.Rename,
		ContextConfirm:  c.Confirm,
		ContextSwitcher: c.Switcher,
		ContextHelp:     c.Help,
	}
}

// LoadConfig loads keybinding configuration from a JSON file. Comments and
// trailing commas are accepted.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a keybinds.json document
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	out := append([]byte(configHeader), data...)
	out = append(out, '\n')
	return os.WriteFile(path, out, 0644)
}

// SplitKeys splits a comma separated key list
func SplitKeys(keys string) []string {
	var out []string
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// ApplyConfig applies user configuration to a registry
// An action listed in a section loses its default keys in that section
func ApplyConfig(registry *Registry, config *Config) error {
	for context, section := range config.sections() {
		for actionStr, keys := range section {
			action := Action(actionStr)
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("%s: %w", context, err)
			}

			parsed := SplitKeys(keys)
			for _, key := range parsed {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("%s.%s: %w", context, actionStr, err)
				}
			}

			registry.UnbindAction(context, action)
			registry.RegisterMultiple(context, parsed, action)
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}
	// If config doesn't exist, that's fine - use defaults

	return registry, nil
}

// ExportRegistry converts the bindings of r into the config layout
func ExportRegistry(r *Registry) *Config {
	config := &Config{Version: "1.0"}
	target := map[Context]*map[string]string{
		ContextGlobal:   &config.Global,
		ContextEditor:   &config.Editor,
		ContextRename:   &config.Rename,
		ContextConfirm:  &config.Confirm,
		ContextSwitcher: &config.Switcher,
		ContextHelp:     &config.Help,
	}

	for context, section := range target {
		grouped := make(map[Action][]string)
		for key, action := range r.bindings[context] {
			grouped[action] = append(grouped[action], key)
		}
		if len(grouped) == 0 {
			continue
		}
		*section = make(map[string]string, len(grouped))
		for action := range grouped {
			(*section)[string(action)] = strings.Join(keysFor(r.bindings[context], action), ",")
		}
	}
	return config
}

// CreateExampleConfig writes the default keybindings to path
func CreateExampleConfig(path string) error {
	return SaveConfig(ExportRegistry(NewDefaultRegistry()), path)
}
