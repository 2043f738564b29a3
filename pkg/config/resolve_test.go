package config_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)
	return cfg
}

func TestLookup(t *testing.T) {
	cfg := loadTestConfig(t)

	names := func(sections []Section) []string {
		var out []string
		for _, s := range sections {
			out = append(out, s.Name)
		}
		return out
	}

	require.Equal(t, []string{"prodreplica", "production"}, names(cfg.Lookup("prod")))
	require.Equal(t, []string{"prodreplica", "production"}, names(cfg.Lookup("PRO")))
	require.Equal(t, []string{"production"}, names(cfg.Lookup("produ")))
	require.Equal(t, []string{"Warehouse"}, names(cfg.Lookup("ware")))
	require.Len(t, cfg.Lookup(""), 4)
	require.Empty(t, cfg.Lookup("nope"))
	require.Empty(t, cfg.Lookup("productionx"))
}

func TestResolve(t *testing.T) {
	cfg := loadTestConfig(t)

	t.Run("literal url", func(t *testing.T) {
		target, err := cfg.Resolve("sqlite:///tmp/x.db")
		require.NoError(t, err)
		require.Equal(t, Target{URL: "sqlite:///tmp/x.db"}, target)
	})

	t.Run("unique prefix", func(t *testing.T) {
		target, err := cfg.Resolve("sc")
		require.NoError(t, err)
		require.Equal(t, "scratch", target.Section)
		require.NotEmpty(t, target.HistoryFile)
	})

	t.Run("case insensitive", func(t *testing.T) {
		target, err := cfg.Resolve("WAREHOUSE")
		require.NoError(t, err)
		require.Equal(t, "clickhouse://default@localhost:9000/default", target.URL)
		require.Empty(t, target.HistoryFile)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := cfg.Resolve("x")
		require.EqualError(t, err, `unknown section "x"`)

		var unknown *UnknownSectionError
		require.True(t, errors.As(err, &unknown))
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := cfg.Resolve("prod")
		require.EqualError(t, err, `ambiguous prefix "prod", matches: prodreplica, production`)

		var ambiguous *AmbiguousPrefixError
		require.True(t, errors.As(err, &ambiguous))
		require.Equal(t, []string{"prodreplica", "production"}, ambiguous.Matches)
	})

	t.Run("empty config", func(t *testing.T) {
		_, err := (&Config{}).Resolve("dev")
		require.Error(t, err)
	})
}
