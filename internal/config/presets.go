package config

import "sort"

var Presets = map[string]*Config{
	// Reference problem over [1, 10] with h = 0.009.
	"reference": {
		Model: "logdecay", X0: 1.0, Y0: 1.0, XEnd: 10.0, Steps: 1000,
		Oracle: OracleConfig{Tol: 1e-6},
	},
	// The textbook run this tool grew out of: x0 = 2, h = 0.3, 1000 steps.
	"classic": {
		Model: "logdecay", X0: 2.0, Y0: 1.0, XEnd: 302.0, Steps: 1000,
		Oracle: OracleConfig{Tol: 1e-6},
	},
	// Coarse grid for fast iteration.
	"quick": {
		Model: "logdecay", X0: 1.0, Y0: 1.0, XEnd: 10.0, Steps: 100,
		Oracle: OracleConfig{Tol: 1e-6},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
