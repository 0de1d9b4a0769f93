// Package config loads the run configuration: the brokerage sources to read,
// the category table and the report settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/models"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/parser"
	"github.com/ukaji3/portfolio-tracker-go/pkg/tracker/report"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. PORTFOLIO_OUTPUT_FILE.
const EnvPrefix = "PORTFOLIO"

// ErrInvalidConfig indicates a configuration that cannot be run.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a complete run configuration
type Config struct {
	OutputFile     string              `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	SheetName      string              `yaml:"sheet_name" envconfig:"SHEET_NAME" validate:"max=31"`
	ChartTitle     string              `yaml:"chart_title" envconfig:"CHART_TITLE"`
	Currency       string              `yaml:"currency" envconfig:"CURRENCY" validate:"omitempty,len=3,alpha"`
	PercentBasis   string              `yaml:"percent_basis" envconfig:"PERCENT_BASIS" validate:"oneof=total exclude-first"`
	CategoriesFile string              `yaml:"categories_file" envconfig:"CATEGORIES_FILE"`
	Logging        LoggingConfig       `yaml:"logging" envconfig:"LOGGING"`
	Sources        []SourceConfig      `yaml:"sources" ignored:"true" validate:"min=1,dive"`
	Categories     map[string][]string `yaml:"categories" ignored:"true" validate:"dive,keys,required,endkeys,dive,required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=console json"`
}

// SourceConfig describes one brokerage export
type SourceConfig struct {
	Name        string   `yaml:"name"`
	Path        string   `yaml:"path" validate:"required"`
	Format      string   `yaml:"format" validate:"omitempty,oneof=csv xlsx"`
	Layout      string   `yaml:"layout" validate:"omitempty,oneof=heuristic fixed"`
	Delimiter   string   `yaml:"delimiter"`
	Encoding    string   `yaml:"encoding"`
	Sheet       string   `yaml:"sheet"`
	SymbolMatch []string `yaml:"symbol_match" validate:"dive,required"`
	ValueMatch  []string `yaml:"value_match" validate:"dive,required"`
}

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns the configuration used for anything a file leaves unset.
func Default() Config {
	return Config{
		OutputFile:   "portfolio_report.xlsx",
		SheetName:    report.DefaultSheet,
		ChartTitle:   report.DefaultChartTitle,
		Currency:     report.DefaultCurrency,
		PercentBasis: string(models.BasisTotal),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides, loads the categories file and validates the result. Relative
// paths in the file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.LoadCategoriesFile(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePaths makes relative source, categories and output paths relative
// to dir.
func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range c.Sources {
		c.Sources[i].Path = resolve(c.Sources[i].Path)
	}
	c.CategoriesFile = resolve(c.CategoriesFile)
	c.OutputFile = resolve(c.OutputFile)
}

// LoadCategoriesFile merges the categories in c.CategoriesFile, if any, into
// c.Categories. A category present in both gets the union of its symbols.
func (c *Config) LoadCategoriesFile() error {
	if c.CategoriesFile == "" {
		return nil
	}
	cats, err := LoadCategories(c.CategoriesFile)
	if err != nil {
		return err
	}
	if c.Categories == nil {
		c.Categories = make(map[string][]string, len(cats))
	}
	for name, symbols := range cats {
		c.Categories[name] = append(c.Categories[name], symbols...)
	}
	return nil
}

// LoadCategories reads a category file. The file is either a mapping of
// category name to symbol list, or the same mapping under a "categories" key.
func LoadCategories(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	var wrapped struct {
		Categories map[string][]string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Categories != nil {
		return wrapped.Categories, nil
	}

	var cats map[string][]string
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("failed to parse categories %s: %w", path, err)
	}
	return cats, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: no sources configured", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}
	if _, err := c.Descriptors(); err != nil {
		return err
	}
	if _, err := c.CategoryTable(); err != nil {
		return err
	}
	return nil
}

// describe turns validator errors into one line per failing field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}

// Descriptors converts the configured sources into source descriptors.
func (c *Config) Descriptors() ([]models.SourceDescriptor, error) {
	out := make([]models.SourceDescriptor, 0, len(c.Sources))
	seen := make(map[string]bool)
	for i, s := range c.Sources {
		d, err := s.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("%w: source %d: %v", ErrInvalidConfig, i+1, err)
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("source%d", i+1)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: duplicate source name %q", ErrInvalidConfig, d.Name)
		}
		seen[d.Name] = true
		out = append(out, d)
	}
	return out, nil
}

// Descriptor validates s and converts it into a source descriptor.
func (s SourceConfig) Descriptor() (models.SourceDescriptor, error) {
	if s.Path == "" {
		return models.SourceDescriptor{}, errors.New("path is required")
	}

	layout := models.Layout(strings.ToLower(s.Layout))
	switch layout {
	case "":
		layout = models.LayoutHeuristic
	case models.LayoutHeuristic, models.LayoutFixed:
	default:
		return models.SourceDescriptor{}, fmt.Errorf("unknown layout %q", s.Layout)
	}

	format := models.Format(strings.ToLower(s.Format))
	switch format {
	case "":
		format = parser.FormatFromPath(s.Path)
	case models.FormatCSV, models.FormatXLSX:
	default:
		return models.SourceDescriptor{}, fmt.Errorf("unknown format %q", s.Format)
	}

	delim, err := ParseDelimiter(s.Delimiter)
	if err != nil {
		return models.SourceDescriptor{}, err
	}
	if _, err := parser.LookupEncoding(s.Encoding); err != nil {
		return models.SourceDescriptor{}, err
	}

	name := s.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(s.Path), filepath.Ext(s.Path))
	}

	return models.SourceDescriptor{
		Name:        name,
		Path:        s.Path,
		Format:      format,
		Layout:      layout,
		Delimiter:   delim,
		Encoding:    s.Encoding,
		Sheet:       s.Sheet,
		SymbolMatch: s.SymbolMatch,
		ValueMatch:  s.ValueMatch,
	}, nil
}

// ParseDelimiter accepts a single character, or "tab"/"\t" for a tab.
// An empty string means a comma.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return parser.DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\n' || r == '\r' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// CategoryTable builds the symbol lookup from the configured categories.
func (c *Config) CategoryTable() (models.CategoryTable, error) {
	t, err := models.NewCategoryTable(c.Categories)
	if err != nil {
		return models.CategoryTable{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return t, nil
}

// Basis returns the configured percentage denominator.
func (c *Config) Basis() models.PercentBasis {
	return models.PercentBasis(c.PercentBasis)
}
