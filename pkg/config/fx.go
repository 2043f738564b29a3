package config

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(NewLoader))

// Loader loads the configuration named on the command line, falling back to
// the default file.
type Loader struct {
	DefaultPath string
}

// NewLoader returns a Loader reading consts.DefaultConfigFile by default.
func NewLoader() *Loader {
	return &Loader{DefaultPath: consts.DefaultConfigFile}
}

// Load applies envFile (when given) to the process environment and then reads
// the configuration. An explicit path must exist; the default one may not.
//
// Variables already present in the environment take precedence over the ones
// in envFile.
func (l *Loader) Load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(ExpandHome(envFile)); err != nil {
			return nil, errors.Wrapf(err, "failed to load env file: %s", envFile)
		}
	}

	if path == "" {
		return Load(l.DefaultPath, false)
	}

	return Load(path, true)
}
