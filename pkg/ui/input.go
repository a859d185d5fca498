package ui

import (
	"bytes"
	"html/template"
	"sort"
)

// InputClass is the default style set of the input primitive.
const InputClass = "flex h-15 w-full rounded-md border border-input bg-background px-3 py-2 text-sm " +
	"placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 " +
	"focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50"

// InputProps are passed through to the rendered <input> element. ID is the
// handle parents use to reach the element (focus, value).
type InputProps struct {
	ID          string
	Name        string
	Type        string
	Value       string
	Placeholder string
	Class       string
	Required    bool
	Disabled    bool
	Attrs       map[string]string
}

type inputAttr struct {
	Name  string
	Value string
}

var inputTmpl = template.Must(template.New("input").Parse(
	`<input type="{{.Type}}" class="{{.Class}}"` +
		`{{with .ID}} id="{{.}}"{{end}}` +
		`{{with .Name}} name="{{.}}"{{end}}` +
		`{{with .Value}} value="{{.}}"{{end}}` +
		`{{with .Placeholder}} placeholder="{{.}}"{{end}}` +
		`{{if .Required}} required{{end}}` +
		`{{if .Disabled}} disabled{{end}}` +
		`{{range .Attrs}} {{.Name}}="{{.Value}}"{{end}}>`))

// Input renders the styled input primitive.
func Input(props InputProps) template.HTML {
	typ := props.Type
	if typ == "" {
		typ = "text"
	}

	attrs := make([]inputAttr, 0, len(props.Attrs))
	for name, value := range props.Attrs {
		if !validAttrName(name) {
			continue
		}
		attrs = append(attrs, inputAttr{Name: name, Value: value})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })

	data := struct {
		InputProps
		Type  string
		Class string
		Attrs []inputAttr
	}{
		InputProps: props,
		Type:       typ,
		Class:      Merge(InputClass, props.Class),
		Attrs:      attrs,
	}

	var buf bytes.Buffer
	if err := inputTmpl.Execute(&buf, data); err != nil {
		panic("ui: rendering input: " + err.Error())
	}
	return template.HTML(buf.String())
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
