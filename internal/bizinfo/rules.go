package bizinfo

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/fields.yaml
var fieldsYAML embed.FS

// FieldChain is one ordered fallback rule: try each upstream key in order,
// first non-empty value wins, exhaustion yields Default.
type FieldChain struct {
	Name    string   `yaml:"name"`
	Keys    []string `yaml:"keys"`
	Default string   `yaml:"default"`
}

// RegionName pairs the short and full legal form of a province/city name.
type RegionName struct {
	Short string `yaml:"short"`
	Full  string `yaml:"full"`
}

// Rules holds the data-driven normalization policy: field fallback chains,
// support-type tag list, the region name table, and category codes.
type Rules struct {
	Fields          []FieldChain      `yaml:"fields"`
	SupportTypeTags []string          `yaml:"support_type_tags"`
	Regions         []RegionName      `yaml:"regions"`
	Categories      map[string]string `yaml:"categories"`
}

// LoadRules reads the embedded fields.yaml. The path parameter, when
// non-empty, overrides the embedded copy for local experimentation.
func LoadRules(path string) (*Rules, error) {
	data, err := fieldsYAML.ReadFile("config/fields.yaml")
	if path != "" {
		if fileData, fileErr := os.ReadFile(path); fileErr == nil {
			data, err = fileData, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading field rules: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing field rules: %w", err)
	}
	if len(rules.Fields) == 0 {
		return nil, fmt.Errorf("field rules are empty")
	}

	return &rules, nil
}

var (
	defaultRulesOnce sync.Once
	defaultRules     *Rules
	defaultRulesErr  error
)

// DefaultRules returns the process-wide rules loaded from the embedded
// config. The embedded file ships with the binary, so a load failure is a
// build defect and panics rather than being threaded through every caller.
func DefaultRules() *Rules {
	defaultRulesOnce.Do(func() {
		defaultRules, defaultRulesErr = LoadRules("")
	})
	if defaultRulesErr != nil {
		panic(fmt.Sprintf("embedded field rules invalid: %v", defaultRulesErr))
	}
	return defaultRules
}

// CategoryCode maps a category label ("금융", "기술", ...) to its
// searchLclasId code. Unknown labels return "".
func (r *Rules) CategoryCode(label string) string {
	return r.Categories[label]
}
