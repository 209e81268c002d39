package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"rental-yield/domain"
)

// LoadScenario reads a scenario definition from a YAML file.
func LoadScenario(path string) (domain.ScenarioInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScenarioInput{}, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario. Unknown keys are rejected.
func ParseScenario(data []byte) (domain.ScenarioInput, error) {
	var input domain.ScenarioInput
	if err := yaml.UnmarshalStrict(data, &input); err != nil {
		return domain.ScenarioInput{}, fmt.Errorf("parse scenario: %w", err)
	}
	return input, nil
}
