package config

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Section is a single named connection profile.
	Section struct {
		// Name is the key of the section in the configuration file
		Name string

		// URL is the database URL, after environment and home expansion
		URL string

		// HistoryFile is the history file for this connection, empty when the
		// section does not name one
		HistoryFile string
	}

	// Config is the parsed configuration file.
	Config struct {
		// Path is the file the configuration was read from, empty when it was
		// read from a stream or no file exists
		Path string

		// Sections are the connection profiles, sorted by name ignoring case
		Sections []Section
	}

	section struct {
		URL         string `yaml:"url"`
		History     string `yaml:"history,omitempty"`
		HistoryFile string `yaml:"history_file,omitempty"`
	}
)

// LoadConfig parses connection profiles from the provided io.Reader.
//
// The input is a YAML mapping of section name to settings. Every section must
// define url; history (or its alias history_file) is optional. Empty input
// yields an empty configuration.
//
// Example:
//
//	yamlData := `
//	dev:
//	  url: sqlite:///$HOME/dev.db
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Sections[0].URL)
func LoadConfig(r io.Reader) (*Config, error) {
	var raw map[string]section
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg := &Config{Sections: make([]Section, 0, len(raw))}
	for name, s := range raw {
		if s.URL == "" {
			return nil, errors.Errorf("section %q has no \"url\" setting", name)
		}

		history := s.History
		if history == "" {
			history = s.HistoryFile
		}

		cfg.Sections = append(cfg.Sections, Section{
			Name:        name,
			URL:         Expand(s.URL),
			HistoryFile: Expand(history),
		})
	}

	sort.Slice(cfg.Sections, func(i, j int) bool {
		return strings.ToLower(cfg.Sections[i].Name) < strings.ToLower(cfg.Sections[j].Name)
	})

	return cfg, nil
}

// LoadConfigFile loads connection profiles from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("/etc/sqlshell.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	cfg.Path = path
	return cfg, nil
}

// Load reads the configuration at path. When required is false a missing file
// yields an empty configuration instead of an error; any other problem (a
// directory, unreadable or invalid YAML) is always an error.
func Load(path string, required bool) (*Config, error) {
	path = ExpandHome(path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !required {
		slog.Debug("No configuration file", "path", path)
		return &Config{}, nil
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded configuration", "path", path, "sections", len(cfg.Sections))
	return cfg, nil
}
