// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CompaniesFile lists ATS boards separately from the main config so the
// list can be shared between machines.
type CompaniesFile struct {
	Lever      []Company `yaml:"lever"`
	Greenhouse []Company `yaml:"greenhouse"`
}

func OverlayCompanies(cfg *Config, companiesPath string) error {
	b, err := os.ReadFile(companiesPath)
	if err != nil {
		// Missing companies file should not kill startup
		return nil
	}

	var cf CompaniesFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return err
	}

	if len(cf.Greenhouse) > 0 {
		cfg.Providers.Greenhouse.Companies = cf.Greenhouse
	}
	if len(cf.Lever) > 0 {
		cfg.Providers.Lever.Companies = cf.Lever
	}
	return nil
}
