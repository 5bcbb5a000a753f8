package domain

// DefaultBaseYear is the calendar year mapped to Values[0] when a
// configuration does not set one.
const DefaultBaseYear = 2025

// Scenario is a named parameter set from a configuration file.
type Scenario struct {
	Name                 string `json:"name" yaml:"name"`
	ProjectionParameters `yaml:",inline"`
}

// Configuration is the top-level shape of a scenario file.
type Configuration struct {
	BaseYear  int        `json:"base_year" yaml:"base_year"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}
