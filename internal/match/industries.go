package match

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/industries.yaml
var industriesYAML embed.FS

type industryTable struct {
	Industries map[string][]string `yaml:"industries"`
}

var (
	industryOnce sync.Once
	industryMap  map[string][]string
	industryErr  error
)

func loadIndustries() map[string][]string {
	industryOnce.Do(func() {
		data, err := industriesYAML.ReadFile("config/industries.yaml")
		if err != nil {
			industryErr = err
			return
		}
		var table industryTable
		if err := yaml.Unmarshal(data, &table); err != nil {
			industryErr = err
			return
		}
		industryMap = table.Industries
	})
	if industryErr != nil {
		panic(fmt.Sprintf("embedded industry table invalid: %v", industryErr))
	}
	return industryMap
}

// KeywordsForIndustry expands an industry name into its curated related
// terms. An unmapped industry falls back to the name itself with a trailing
// "업" domain suffix stripped, so "양식업" still matches "양식" in project
// text.
func KeywordsForIndustry(industry string) []string {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil
	}
	if keywords, ok := loadIndustries()[industry]; ok {
		return keywords
	}
	return []string{strings.TrimSuffix(industry, "업")}
}
