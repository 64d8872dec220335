package config

import (
	"os"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Classify holds the optional resolved-status policy file path
type Classify struct {
	Path string
}

// Flags returns CLI flags for Classify configuration
func (c *Classify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "classify-config",
			Usage:       "YAML file overriding the resolved-status classification policy",
			Sources:     cli.EnvVars("ISSUEPULSE_CLASSIFY_CONFIG"),
			Destination: &c.Path,
		},
	}
}

// Configure builds the resolved classifier, falling back to the default
// policy when no file is given
func (c *Classify) Configure() (model.ResolvedClassifier, error) {
	if c.Path == "" {
		return model.DefaultClassifier(), nil
	}

	cfg, err := LoadClassifyFromFile(c.Path)
	if err != nil {
		return nil, err
	}
	return cfg.Classifier(), nil
}

// LoadClassifyFromFile loads a classify policy from a YAML file
func LoadClassifyFromFile(path string) (*model.ClassifyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "classify configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read classify configuration",
			goerr.V("path", path))
	}

	var cfg model.ClassifyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid classify configuration",
			goerr.V("path", path))
	}

	return &cfg, nil
}
