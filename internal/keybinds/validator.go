package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys maps keys that should not be rebound to their action
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for _, context := range sortedContexts(registry) {
		for _, key := range sortedKeys(registry.bindings[context]) {
			v.checkBinding(context, key, registry.bindings[context][key], registry, result)
		}
	}

	return result
}

// ValidateConfig validates a configuration before applying it. Unlike a
// registry, a config can assign one key to two actions in a section.
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	merged := NewDefaultRegistry()

	for _, context := range AllContexts() {
		section := config.sections()[context]
		owner := make(map[string]Action)

		actions := make([]string, 0, len(section))
		for a := range section {
			actions = append(actions, a)
		}
		sort.Strings(actions)

		for _, actionStr := range actions {
			if err := ValidateAction(actionStr); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     section[actionStr],
					Message: err.Error(),
				})
				continue
			}
			action := Action(actionStr)

			keys := SplitKeys(section[actionStr])
			if len(keys) == 0 {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Message: fmt.Sprintf("action %s has no keys and will be unbound", action),
				})
			}

			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "invalid",
						Context: context,
						Key:     key,
						Message: err.Error(),
					})
					continue
				}
				if prev, dup := owner[key]; dup && prev != action {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "conflict",
						Context: context,
						Key:     key,
						Message: fmt.Sprintf("bound to both %s and %s", prev, action),
					})
					continue
				}
				owner[key] = action
			}

			merged.UnbindAction(context, action)
			merged.RegisterMultiple(context, keys, action)
		}
	}

	if result.HasErrors() {
		return result
	}

	registryResult := v.ValidateRegistry(merged)
	result.Errors = append(result.Errors, registryResult.Errors...)
	result.Warnings = append(result.Warnings, registryResult.Warnings...)
	return result
}

func (v *Validator) checkBinding(context Context, key string, action Action, registry *Registry, result *ValidationResult) {
	if reserved, ok := v.reservedKeys[key]; ok && action != reserved {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:    "warning",
			Context: context,
			Key:     key,
			Message: "reserved key rebound (may cause issues)",
		})
	}

	if context == ContextGlobal {
		return
	}
	if globalAction, hasGlobal := registry.bindings[ContextGlobal][key]; hasGlobal && globalAction != action {
		result.Warnings = append(result.Warnings, ValidationError{
			Type:    "warning",
			Context: context,
			Key:     key,
			Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
		})
	}
}

// FindConflicts finds all conflicting keybindings in a config
func FindConflicts(config *Config) []string {
	validator := NewValidator()
	result := validator.ValidateConfig(config)

	var conflicts []string
	for _, err := range result.Errors {
		if err.Type == "conflict" {
			conflicts = append(conflicts, err.Error())
		}
	}

	return conflicts
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	// Check for valid modifier combinations
	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}

func sortedContexts(r *Registry) []Context {
	contexts := make([]Context, 0, len(r.bindings))
	for c := range r.bindings {
		contexts = append(contexts, c)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}

func sortedKeys(m map[string]Action) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
