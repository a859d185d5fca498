package ui

import (
	"strings"
)

// If returns class when cond is true, otherwise an empty string.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// Merge joins utility class strings. When two classes target the same
// utility under the same variant chain, the later one wins.
func Merge(classes ...string) string {
	var tokens []string
	for _, c := range classes {
		tokens = append(tokens, strings.Fields(c)...)
	}

	seen := make(map[string]bool, len(tokens))
	kept := make([]string, 0, len(tokens))

	// Walk backwards so the last occurrence of a group is the one kept.
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		variants, group := classify(tok)
		key := variants + group
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, sub := range overrides[group] {
			seen[variants+sub] = true
		}
		kept = append(kept, tok)
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " ")
}

// overrides lists the groups a shorthand group replaces when it comes later.
var overrides = map[string][]string{
	"p":       {"px", "py", "pt", "pr", "pb", "pl"},
	"px":      {"pr", "pl"},
	"py":      {"pt", "pb"},
	"m":       {"mx", "my", "mt", "mr", "mb", "ml"},
	"mx":      {"mr", "ml"},
	"my":      {"mt", "mb"},
	"inset":   {"inset-x", "inset-y", "top", "right", "bottom", "left"},
	"rounded": {"rounded-t", "rounded-r", "rounded-b", "rounded-l"},
	"gap":     {"gap-x", "gap-y"},
}

// prefixGroups maps utility prefixes to conflict groups, longest first.
var prefixGroups = []string{
	"inset-x", "inset-y", "min-h", "min-w", "max-h", "max-w",
	"gap-x", "gap-y", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
	"inset", "px", "py", "pt", "pr", "pb", "pl", "mx", "my", "mt", "mr", "mb", "ml",
	"top", "right", "bottom", "left", "size", "gap", "opacity", "cursor", "z",
	"leading", "tracking", "shadow", "duration", "ease", "blur", "from", "via", "to",
	"h", "w", "p", "m",
}

var displays = map[string]bool{
	"block": true, "inline-block": true, "inline": true, "flex": true,
	"inline-flex": true, "grid": true, "inline-grid": true, "hidden": true,
	"contents": true, "table": true,
}

var positions = map[string]bool{
	"static": true, "fixed": true, "absolute": true, "relative": true, "sticky": true,
}

var fontSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true, "2xl": true,
	"3xl": true, "4xl": true, "5xl": true, "6xl": true, "7xl": true, "8xl": true, "9xl": true,
}

var fontWeights = map[string]bool{
	"thin": true, "extralight": true, "light": true, "normal": true, "medium": true,
	"semibold": true, "bold": true, "extrabold": true, "black": true,
}

// classify splits a class into its variant chain (with trailing colon) and
// the conflict group of its base utility.
func classify(class string) (string, string) {
	variants := ""
	base := class
	if i := lastVariantColon(class); i >= 0 {
		variants = class[:i+1]
		base = class[i+1:]
	}
	base = strings.TrimPrefix(base, "!")
	base = strings.TrimPrefix(base, "-")
	return variants, group(base)
}

// lastVariantColon finds the last ':' outside an arbitrary value bracket.
func lastVariantColon(class string) int {
	depth := 0
	idx := -1
	for i, r := range class {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				idx = i
			}
		}
	}
	return idx
}

func group(base string) string {
	switch {
	case displays[base]:
		return "display"
	case positions[base]:
		return "position"
	case base == "flex-row" || base == "flex-col" || base == "flex-row-reverse" || base == "flex-col-reverse":
		return "flex-direction"
	case base == "outline-none" || base == "outline":
		return "outline-style"
	case base == "rounded":
		return "rounded"
	case base == "border" || isWidthOf(base, "border"):
		return "border-w"
	case base == "ring" || isWidthOf(base, "ring"):
		return "ring-w"
	case isWidthOf(base, "ring-offset"):
		return "ring-offset-w"
	}

	head, tail, _ := strings.Cut(base, "-")
	switch head {
	case "text":
		switch {
		case fontSizes[tail]:
			return "font-size"
		case tail == "left" || tail == "center" || tail == "right" || tail == "justify":
			return "text-align"
		}
		return "text-color"
	case "font":
		if fontWeights[tail] {
			return "font-weight"
		}
		return "font-family"
	case "bg":
		switch {
		case strings.HasPrefix(tail, "gradient") || tail == "none" || strings.HasPrefix(tail, "[linear") || strings.HasPrefix(tail, "[url"):
			return "bg-image"
		case tail == "auto" || tail == "cover" || tail == "contain" || strings.HasPrefix(tail, "[length"):
			return "bg-size"
		}
		return "bg-color"
	case "rounded":
		for _, side := range []string{"t", "r", "b", "l"} {
			if tail == side || strings.HasPrefix(tail, side+"-") {
				return "rounded-" + side
			}
		}
		return "rounded"
	case "border":
		return "border-color"
	case "ring":
		if strings.HasPrefix(tail, "offset-") {
			return "ring-offset-color"
		}
		return "ring-color"
	case "justify":
		return "justify-content"
	case "items":
		return "align-items"
	case "animate":
		return "animation"
	case "transition":
		return "transition"
	}

	for _, prefix := range prefixGroups {
		if base == prefix || strings.HasPrefix(base, prefix+"-") {
			return prefix
		}
	}
	return base
}

// isWidthOf reports whether base is "<utility>-<n>" with a numeric or
// arbitrary length value.
func isWidthOf(base, utility string) bool {
	rest, ok := strings.CutPrefix(base, utility+"-")
	if !ok || rest == "" {
		return false
	}
	if strings.HasPrefix(rest, "[") {
		return strings.ContainsAny(rest, "0123456789") && !strings.Contains(rest, "#")
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
