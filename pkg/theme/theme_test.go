package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "class", th.DarkMode)
	assert.True(t, th.Container.Center)
	assert.Equal(t, "2rem", th.Container.Padding)
	assert.Equal(t, "1400px", th.Container.Screens["2xl"])
	assert.Contains(t, th.Plugins, "tailwindcss-animate")
	assert.Len(t, th.Content, 4)
}

func TestFlatColors(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)

	colors, err := th.FlatColors()
	require.NoError(t, err)

	assert.Equal(t, "hsl(var(--primary))", colors["primary"])
	assert.Equal(t, "hsl(var(--primary-foreground))", colors["primary-foreground"])
	assert.Equal(t, "hsl(var(--purple-bg))", colors["purple-800"])
	assert.Equal(t, "hsl(var(--input))", colors["input"])
	_, hasDefault := colors["primary-DEFAULT"]
	assert.False(t, hasDefault)
}

func TestCSS(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)

	css, err := th.CSS()
	require.NoError(t, err)

	assert.Contains(t, css, ".container { width: 100%; margin-right: auto; margin-left: auto; padding-right: 2rem; padding-left: 2rem; }")
	assert.Contains(t, css, "@media (min-width: 1400px) { .container { max-width: 1400px; } }")
	assert.Contains(t, css, ".bg-background { background-color: hsl(var(--background)); }")
	assert.Contains(t, css, ".border-input { border-color: hsl(var(--input)); }")
	assert.Contains(t, css, ".rounded-md { border-radius: calc(var(--radius) - 2px); }")
	assert.Contains(t, css, ".animate-accordion-down { animation: accordion-down 0.2s ease-out; }")
	assert.Contains(t, css, "@keyframes spin-around {")

	// keyframe steps are ordered from start to end
	spin := css[strings.Index(css, "@keyframes spin-around"):]
	spin = spin[:strings.Index(spin, "}\n}")]
	assert.Less(t, strings.Index(spin, "0% {"), strings.Index(spin, "15%, 35% {"))
	assert.Less(t, strings.Index(spin, "65%, 85% {"), strings.Index(spin, "100% {"))

	again, err := th.CSS()
	require.NoError(t, err)
	assert.Equal(t, css, again)
}

func TestCSS_Prefix(t *testing.T) {
	th, err := Parse([]byte(`
prefix: tw-
colors:
  brand: "#ff0000"
`))
	require.NoError(t, err)

	css, err := th.CSS()
	require.NoError(t, err)
	assert.Contains(t, css, ".tw-bg-brand { background-color: #ff0000; }")
}

func TestParse_AnimationWithoutKeyframes(t *testing.T) {
	_, err := Parse([]byte(`
animation:
  wobble: wobble 1s infinite
`))
	assert.Error(t, err)
}

func TestParse_BadColor(t *testing.T) {
	th, err := Parse([]byte(`
colors:
  brand:
    - red
`))
	require.NoError(t, err)

	_, err = th.FlatColors()
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("darkMode: media\n"), 0o600))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "media", th.DarkMode)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
