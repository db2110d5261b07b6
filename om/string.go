package om

import (
	"strconv"
	"strings"
)

// The String methods produce a deterministic, human-readable rendering used
// for diagnostics and test failure messages. Applications and errors render
// as indented multi-line text; everything else renders compactly. Optional
// fields are listed only when they hold a value.

func (n *Object) String() string           { return render(n, "") }
func (n *Reference) String() string        { return render(n, "") }
func (n *Integer) String() string          { return render(n, "") }
func (n *Float) String() string            { return render(n, "") }
func (n *String) String() string           { return render(n, "") }
func (n *Bytes) String() string            { return render(n, "") }
func (n *Symbol) String() string           { return render(n, "") }
func (n *Variable) String() string         { return render(n, "") }
func (n *Foreign) String() string          { return render(n, "") }
func (n *Application) String() string      { return render(n, "") }
func (n *Attribution) String() string      { return render(n, "") }
func (n *AttributionPairs) String() string { return render(n, "") }
func (n *Binding) String() string          { return render(n, "") }
func (n *BindVariables) String() string    { return render(n, "") }
func (n *AttVar) String() string           { return render(n, "") }
func (n *Error) String() string            { return render(n, "") }

type renderedField struct {
	name  string
	value string
}

func render(n Any, indent string) string {
	if isNil(n) {
		return "nil"
	}
	switch x := n.(type) {
	case *Object:
		fs := []renderedField{
			{"omel", render(x.Elem, indent)},
			{"version", strconv.Quote(x.Version)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Object", false, indent, fs)
	case *Reference:
		fs := []renderedField{{"href", strconv.Quote(x.Href)}}
		fs = appendCommon(fs, x.ID, "")
		return compose("Reference", false, indent, fs)
	case *Integer:
		fs := []renderedField{{"integer", strconv.FormatInt(x.Value, 10)}}
		fs = appendCommon(fs, x.ID, "")
		return compose("Integer", false, indent, fs)
	case *Float:
		fs := []renderedField{{"double", strconv.FormatFloat(x.Value, 'g', -1, 64)}}
		fs = appendCommon(fs, x.ID, "")
		return compose("Float", false, indent, fs)
	case *String:
		var fs []renderedField
		if x.Value != nil {
			fs = append(fs, renderedField{"string", strconv.Quote(*x.Value)})
		}
		fs = appendCommon(fs, x.ID, "")
		return compose("String", false, indent, fs)
	case *Bytes:
		fs := []renderedField{{"bytes", strconv.Quote(string(x.Value))}}
		fs = appendCommon(fs, x.ID, "")
		return compose("Bytes", false, indent, fs)
	case *Symbol:
		fs := []renderedField{
			{"name", strconv.Quote(x.Name)},
			{"cd", strconv.Quote(x.CD)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Symbol", false, indent, fs)
	case *Variable:
		fs := []renderedField{{"name", strconv.Quote(x.Name)}}
		fs = appendCommon(fs, x.ID, "")
		return compose("Variable", false, indent, fs)
	case *Foreign:
		fs := []renderedField{{"obj", strconv.Quote(x.Value)}}
		if x.Encoding != "" {
			fs = append(fs, renderedField{"encoding", strconv.Quote(x.Encoding)})
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Foreign", false, indent, fs)
	case *Application:
		ni := indent + "  "
		fs := []renderedField{
			{"elem", render(x.Elem, ni)},
			{"arguments", renderSeq(x.Arguments, ni, true)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Application", true, indent, fs)
	case *Attribution:
		fs := []renderedField{
			{"pairs", render(x.Pairs, indent)},
			{"obj", render(x.Obj, indent)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Attribution", false, indent, fs)
	case *AttributionPairs:
		fs := []renderedField{{"pairs", renderPairs(x.Pairs, indent)}}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("AttributionPairs", false, indent, fs)
	case *Binding:
		fs := []renderedField{
			{"binder", render(x.Binder, indent)},
			{"vars", render(x.Vars, indent)},
			{"obj", render(x.Obj, indent)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Binding", false, indent, fs)
	case *BindVariables:
		vars := make([]Any, len(x.Vars))
		for i, v := range x.Vars {
			vars[i] = v
		}
		fs := []renderedField{{"vars", renderSeq(vars, indent, false)}}
		fs = appendCommon(fs, x.ID, "")
		return compose("BindVariables", false, indent, fs)
	case *AttVar:
		fs := []renderedField{
			{"pairs", render(x.Pairs, indent)},
			{"obj", render(x.Obj, indent)},
		}
		fs = appendCommon(fs, x.ID, "")
		return compose("AttVar", false, indent, fs)
	case *Error:
		ni := indent + "  "
		fs := []renderedField{
			{"name", render(x.Name, ni)},
			{"params", renderSeq(x.Params, ni, true)},
		}
		fs = appendCommon(fs, x.ID, x.CDBase)
		return compose("Error", true, indent, fs)
	}
	return "unknown"
}

func appendCommon(fs []renderedField, id, cdbase string) []renderedField {
	if id != "" {
		fs = append(fs, renderedField{"id", strconv.Quote(id)})
	}
	if cdbase != "" {
		fs = append(fs, renderedField{"cdbase", strconv.Quote(cdbase)})
	}
	return fs
}

func compose(variant string, multiline bool, indent string, fs []renderedField) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.name + "=" + f.value
	}
	if !multiline {
		return variant + "(" + strings.Join(parts, ", ") + ")"
	}
	ni := indent + "  "
	return variant + "(\n" + ni + strings.Join(parts, ",\n"+ni) + ")"
}

func renderSeq(items []Any, indent string, multiline bool) string {
	if multiline && len(items) > 1 {
		ni := indent + "  "
		parts := make([]string, len(items))
		for i, v := range items {
			parts[i] = render(v, ni)
		}
		return "[\n" + ni + strings.Join(parts, ",\n"+ni) + "]"
	}
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = render(v, indent)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderPairs(pairs []Pair, indent string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = "(" + render(p.Key, indent) + ", " + render(p.Value, indent) + ")"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
