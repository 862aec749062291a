package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/gad-lang/clsmeth"
	"github.com/gad-lang/clsmeth/internal/config"
	"github.com/gad-lang/clsmeth/scenario"
)

func TestDefault(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, 3, c.Repeat)
	require.NoError(t, c.Validate())

	p, err := c.ShapePolicy()
	require.NoError(t, err)
	require.Equal(t, clsmeth.ShapeStrict, p)

	lvl, err := c.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, lvl)

	scenarios, err := c.SelectedScenarios()
	require.NoError(t, err)
	require.Len(t, scenarios, len(scenario.All()))
}

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(`
repeat: 5
policy: structural
scenarios:
  - is_as_dynamic
  - is_as_shuffle_dynamic
log_level: debug
color: true
`))
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Repeat:    5,
		Policy:    "structural",
		Scenarios: []string{"is_as_dynamic", "is_as_shuffle_dynamic"},
		LogLevel:  "debug",
		Color:     true,
	}, c)

	r, err := c.Runner(zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 5, r.Repeat)
	require.Equal(t, clsmeth.ShapeStructural, r.Policy)
	require.Len(t, r.Scenarios, 2)
	require.Equal(t, "is_as_dynamic", r.Scenarios[0].Name)

	// partial documents keep the defaults
	c, err = config.Parse([]byte("policy: strict\n"))
	require.NoError(t, err)
	require.Equal(t, scenario.DefaultRepeat, c.Repeat)
	require.Equal(t, "warn", c.LogLevel)

	c, err = config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestParseErrors(t *testing.T) {
	for doc, msg := range map[string]string{
		"repeat: 0\n":            "config: repeat must be at least 1, got 0",
		"policy: loose\n":        "config: TypeError: unknown shape policy loose",
		"scenarios: [missing]\n": "config: UnknownScenarioError: missing",
	} {
		_, err := config.Parse([]byte(doc))
		require.EqualError(t, err, msg, doc)
	}

	_, err := config.Parse([]byte("log_level: loud\n"))
	require.ErrorContains(t, err, "loud")

	_, err = config.Parse([]byte("repeats: 2\n"))
	require.ErrorContains(t, err, "field repeats not found")

	_, err = config.Parse([]byte("repeat: [1]\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clsmeth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repeat: 2\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Repeat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
