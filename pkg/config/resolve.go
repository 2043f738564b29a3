package config

import (
	"fmt"
	"log/slog"
	"strings"
)

type (
	// Target is the outcome of resolving a connection argument.
	Target struct {
		// URL is the database URL to open
		URL string

		// HistoryFile is the history file requested by the matching section,
		// empty when the current one should be kept
		HistoryFile string

		// Section is the name of the matching section, empty for a literal URL
		Section string
	}

	// UnknownSectionError is returned when no section matches a prefix.
	UnknownSectionError struct {
		Spec string
	}

	// AmbiguousPrefixError is returned when a prefix matches several sections.
	AmbiguousPrefixError struct {
		Spec    string
		Matches []string
	}
)

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section %q", e.Spec)
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("ambiguous prefix %q, matches: %s", e.Spec, strings.Join(e.Matches, ", "))
}

// Lookup returns every section whose name starts with spec, ignoring case.
// The result keeps the configuration order and is empty when nothing matches.
func (c *Config) Lookup(spec string) []Section {
	prefix := strings.ToLower(spec)

	var matches []Section
	for _, s := range c.Sections {
		if strings.HasPrefix(strings.ToLower(s.Name), prefix) {
			matches = append(matches, s)
		}
	}

	return matches
}

// Resolve turns a connection argument into a Target.
//
// An argument containing "://" is taken as a literal URL. Anything else is a
// section name prefix that must match exactly one section.
//
// Example:
//
//	target, err := cfg.Resolve("prod")
//	if err != nil {
//		return err // *UnknownSectionError or *AmbiguousPrefixError
//	}
//
//	db, err := database.Open(ctx, target.URL)
func (c *Config) Resolve(spec string) (Target, error) {
	if strings.Contains(spec, "://") {
		return Target{URL: spec}, nil
	}

	matches := c.Lookup(spec)
	switch len(matches) {
	case 0:
		return Target{}, &UnknownSectionError{Spec: spec}
	case 1:
		s := matches[0]
		slog.Debug("Resolved section", "spec", spec, "section", s.Name)
		return Target{URL: s.URL, HistoryFile: s.HistoryFile, Section: s.Name}, nil
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}

	return Target{}, &AmbiguousPrefixError{Spec: spec, Matches: names}
}
