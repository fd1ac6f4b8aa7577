package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyColumnsRequired          = "columns.required"
	KeyColumnsRequiredValues    = "columns.required_values"
	KeySplitPolicy              = "split.policy"
	KeyOutputPrefix             = "output.prefix"
	KeyOutputIncludeRateColumns = "output.include_rate_columns"
)

// Policies for source entries that span more than two calendar days.
const (
	SplitPolicyWarn   = "warn"
	SplitPolicyReject = "reject"
)

type Config struct {
	Columns ColumnsConfig `mapstructure:"columns"`
	Split   SplitConfig   `mapstructure:"split"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ColumnsConfig carries the required-column lists as explicit configuration
// so the validator never depends on process-wide mutable state.
type ColumnsConfig struct {
	Required       []string `mapstructure:"required" validate:"required,min=1"`
	RequiredValues []string `mapstructure:"required_values" validate:"required,min=1"`
}

type SplitConfig struct {
	Policy string `mapstructure:"policy" validate:"required,oneof=warn reject"`
}

type OutputConfig struct {
	Prefix             string `mapstructure:"prefix" validate:"required"`
	IncludeRateColumns bool   `mapstructure:"include_rate_columns"`
}

func defaultRequiredColumns() []string {
	return []string{
		"Email", "Project", "Task", "Description", "Billable",
		"Start date", "Start time", "End date", "End time", "Duration", "Tags",
	}
}

func defaultRequiredValues() []string {
	return []string{
		"Email", "Project", "Task", "Billable",
		"Start date", "Start time", "End date", "End time",
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# togglzoho configuration
columns:
  # Header columns that must be present in the Toggl export.
  required:
    - "Email"
    - "Project"
    - "Task"
    - "Description"
    - "Billable"
    - "Start date"
    - "Start time"
    - "End date"
    - "End time"
    - "Duration"
    - "Tags"
  # Columns that must be non-empty on every data row.
  required_values:
    - "Email"
    - "Project"
    - "Task"
    - "Billable"
    - "Start date"
    - "Start time"
    - "End date"
    - "End time"

split:
  # Entries spanning more than two calendar days: warn | reject
  policy: "warn"

output:
  # Prefix for auto-named output files (zoho_<input>.csv).
  prefix: "zoho_"
  # Emit the empty Staff Rate / Billed Status / Cost Rate columns.
  include_rate_columns: false
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Split.Policy = strings.ToLower(strings.TrimSpace(cfg.Split.Policy))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateColumns(cfg.Columns); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyColumnsRequired, defaultRequiredColumns())
	v.SetDefault(KeyColumnsRequiredValues, defaultRequiredValues())
	v.SetDefault(KeySplitPolicy, SplitPolicyWarn)
	v.SetDefault(KeyOutputPrefix, "zoho_")
	v.SetDefault(KeyOutputIncludeRateColumns, false)
}

func validateColumns(columns ColumnsConfig) error {
	for i, column := range columns.Required {
		if strings.TrimSpace(column) == "" {
			return fmt.Errorf("validation failed: columns.required[%d] is blank", i)
		}
	}
	for i, column := range columns.RequiredValues {
		if strings.TrimSpace(column) == "" {
			return fmt.Errorf("validation failed: columns.required_values[%d] is blank", i)
		}
	}
	return nil
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Columns: ColumnsConfig{
			Required:       defaultRequiredColumns(),
			RequiredValues: defaultRequiredValues(),
		},
		Split:  SplitConfig{Policy: SplitPolicyWarn},
		Output: OutputConfig{Prefix: "zoho_"},
	}
}
