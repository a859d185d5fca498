package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{
			name:    "later height wins",
			classes: []string{"flex h-15 w-full", "h-10"},
			want:    "flex w-full h-10",
		},
		{
			name:    "font size and color do not conflict",
			classes: []string{"text-sm text-white"},
			want:    "text-sm text-white",
		},
		{
			name:    "variant scoped conflict",
			classes: []string{"text-black dark:text-white", "dark:text-black"},
			want:    "text-black dark:text-black",
		},
		{
			name:    "shorthand padding replaces axis padding",
			classes: []string{"px-2 py-1", "p-3"},
			want:    "p-3",
		},
		{
			name:    "axis padding after shorthand is kept",
			classes: []string{"p-3", "px-2"},
			want:    "p-3 px-2",
		},
		{
			name:    "border width and color are separate",
			classes: []string{"border border-input", "border-rose-400"},
			want:    "border border-rose-400",
		},
		{
			name:    "ring width offset and color",
			classes: []string{"ring-2 ring-ring ring-offset-2", "ring-4"},
			want:    "ring-ring ring-offset-2 ring-4",
		},
		{
			name:    "gradient does not drop background color",
			classes: []string{"bg-zinc-200", "bg-gradient-to-r"},
			want:    "bg-zinc-200 bg-gradient-to-r",
		},
		{
			name:    "empty and conditional parts are skipped",
			classes: []string{"w-72", "", If(false, "w-80"), If(true, "mx-auto")},
			want:    "w-72 mx-auto",
		},
		{
			name:    "duplicate keeps last",
			classes: []string{"flex gap-2", "flex"},
			want:    "gap-2 flex",
		},
		{
			name:    "arbitrary value with colon is not a variant",
			classes: []string{"bg-[length:200%_100%] bg-white", "bg-black"},
			want:    "bg-[length:200%_100%] bg-black",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.classes...))
		})
	}
}

func TestInput_CallerClassWins(t *testing.T) {
	html := string(Input(InputProps{ID: "email", Name: "email", Type: "email", Class: "h-10"}))

	assert.Contains(t, html, `id="email"`)
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, "h-10")
	assert.NotContains(t, html, "h-15")
	assert.Contains(t, html, "rounded-md")
}

func TestInput_Defaults(t *testing.T) {
	html := string(Input(InputProps{Name: "q"}))

	assert.True(t, strings.HasPrefix(html, "<input "))
	assert.Contains(t, html, `type="text"`)
	assert.Contains(t, html, "h-15")
	assert.NotContains(t, html, "id=")
	assert.NotContains(t, html, "required")
}

func TestInput_PassthroughAttributes(t *testing.T) {
	html := string(Input(InputProps{
		Name:        "company",
		Value:       `"Acme" <corp>`,
		Placeholder: "Company",
		Required:    true,
		Disabled:    true,
		Attrs: map[string]string{
			"autocomplete": "organization",
			"bad name":     "x",
		},
	}))

	assert.Contains(t, html, `autocomplete="organization"`)
	assert.Contains(t, html, " required")
	assert.Contains(t, html, " disabled")
	assert.NotContains(t, html, "bad name")
	assert.NotContains(t, html, "<corp>")
}

func TestInput_AlwaysRendersElement(t *testing.T) {
	cases := []InputProps{
		{},
		{Type: "email", Value: "\x00\n</script>"},
		{Name: "q", Attrs: map[string]string{"onfocus": "alert(1)", "data-x": `"'`}},
	}
	for _, props := range cases {
		var html string
		assert.NotPanics(t, func() { html = string(Input(props)) })
		assert.True(t, strings.HasPrefix(html, "<input "), html)
		assert.True(t, strings.HasSuffix(html, ">"), html)
	}
}
