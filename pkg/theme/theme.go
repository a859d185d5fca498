// Package theme holds the design tokens of the storefront and compiles them
// into the stylesheet served next to the rendered pages.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTheme []byte

type Container struct {
	Center  bool              `yaml:"center"`
	Padding string            `yaml:"padding"`
	Screens map[string]string `yaml:"screens"`
}

// Theme mirrors the utility framework configuration. Content, DarkMode and
// Plugins are carried for the asset pipeline and do not affect CSS().
type Theme struct {
	DarkMode     string                                  `yaml:"darkMode"`
	Content      []string                                `yaml:"content"`
	Prefix       string                                  `yaml:"prefix"`
	Container    Container                               `yaml:"container"`
	Colors       map[string]interface{}                  `yaml:"colors"`
	BorderRadius map[string]string                       `yaml:"borderRadius"`
	Keyframes    map[string]map[string]map[string]string `yaml:"keyframes"`
	Animation    map[string]string                       `yaml:"animation"`
	Plugins      []string                                `yaml:"plugins"`
}

// Load reads a theme file, falling back to the embedded default when path
// is empty.
func Load(path string) (*Theme, error) {
	data := defaultTheme
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	for name := range t.Animation {
		if _, ok := t.Keyframes[name]; !ok {
			return nil, fmt.Errorf("animation %q has no keyframes", name)
		}
	}
	return &t, nil
}

// FlatColors resolves nested color groups into utility names. A DEFAULT
// entry maps to the group name itself.
func (t *Theme) FlatColors() (map[string]string, error) {
	out := make(map[string]string)
	for name, v := range t.Colors {
		switch val := v.(type) {
		case string:
			out[name] = val
		case map[string]interface{}:
			for shade, sv := range val {
				s, ok := sv.(string)
				if !ok {
					return nil, fmt.Errorf("color %s.%s: expected string, got %T", name, shade, sv)
				}
				if shade == "DEFAULT" {
					out[name] = s
				} else {
					out[name+"-"+shade] = s
				}
			}
		default:
			return nil, fmt.Errorf("color %s: unsupported value %T", name, v)
		}
	}
	return out, nil
}

// CSS compiles the tokens into a stylesheet. Output is deterministic.
func (t *Theme) CSS() (string, error) {
	colors, err := t.FlatColors()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	t.writeContainer(&b)

	for _, name := range sortedKeys(colors) {
		value := colors[name]
		fmt.Fprintf(&b, ".%sbg-%s { background-color: %s; }\n", t.Prefix, name, value)
		fmt.Fprintf(&b, ".%stext-%s { color: %s; }\n", t.Prefix, name, value)
		fmt.Fprintf(&b, ".%sborder-%s { border-color: %s; }\n", t.Prefix, name, value)
	}

	for _, name := range sortedKeys(t.BorderRadius) {
		fmt.Fprintf(&b, ".%srounded-%s { border-radius: %s; }\n", t.Prefix, name, t.BorderRadius[name])
	}

	for _, name := range sortedKeys(t.Keyframes) {
		frames := t.Keyframes[name]
		fmt.Fprintf(&b, "@keyframes %s {\n", name)
		steps := sortedKeys(frames)
		sort.SliceStable(steps, func(i, j int) bool { return stepOrder(steps[i]) < stepOrder(steps[j]) })
		for _, step := range steps {
			props := frames[step]
			fmt.Fprintf(&b, "  %s {", step)
			for _, prop := range sortedKeys(props) {
				fmt.Fprintf(&b, " %s: %s;", prop, props[prop])
			}
			b.WriteString(" }\n")
		}
		b.WriteString("}\n")
	}

	for _, name := range sortedKeys(t.Animation) {
		fmt.Fprintf(&b, ".%sanimate-%s { animation: %s; }\n", t.Prefix, name, t.Animation[name])
	}

	return b.String(), nil
}

func (t *Theme) writeContainer(b *strings.Builder) {
	b.WriteString(".container { width: 100%;")
	if t.Container.Center {
		b.WriteString(" margin-right: auto; margin-left: auto;")
	}
	if t.Container.Padding != "" {
		fmt.Fprintf(b, " padding-right: %s; padding-left: %s;", t.Container.Padding, t.Container.Padding)
	}
	b.WriteString(" }\n")

	screens := sortedKeys(t.Container.Screens)
	sort.SliceStable(screens, func(i, j int) bool {
		return pixels(t.Container.Screens[screens[i]]) < pixels(t.Container.Screens[screens[j]])
	})
	for _, name := range screens {
		width := t.Container.Screens[name]
		fmt.Fprintf(b, "@media (min-width: %s) { .container { max-width: %s; } }\n", width, width)
	}
}

// stepOrder places "from" first, "to" last and percentages by their first
// value in between.
func stepOrder(step string) float64 {
	switch step {
	case "from":
		return -1
	case "to":
		return 101
	}
	first, _, _ := strings.Cut(step, ",")
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(first), "%"), 64)
	if err != nil {
		return 50
	}
	return v
}

func pixels(width string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(width, "px"), 64)
	if err != nil {
		return 0
	}
	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
