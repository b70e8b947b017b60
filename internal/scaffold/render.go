package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/iancoleman/strcase"
	"github.com/spf13/afero"

	"github.com/xx-labs/create-xx/internal/convention"
	"github.com/xx-labs/create-xx/internal/traverse"
)

// ErrRenderCollision is returned when two templates render to the same path.
var ErrRenderCollision = errors.New("templates render to the same destination")

// Variables computed for every template.
const (
	VarTargetDir  = "TARGET_DIR"
	VarCreateName = "CREATE_NAME"
)

// RenderContext assembles the variables visible to one template. Later
// sources win: Env, then the data store entry for the destination, then
// Flags, then the computed TARGET_DIR and CREATE_NAME.
type RenderContext struct {
	Env        map[string]string
	Store      *DataStore
	Flags      map[string]any
	TargetDir  string
	CreateName string
}

// For returns the variables for the template rendered to dest.
func (rc RenderContext) For(dest string) map[string]any {
	vars := make(map[string]any)
	for k, v := range rc.Env {
		vars[k] = v
	}
	if rc.Store != nil {
		for k, v := range rc.Store.Get(dest) {
			vars[k] = v
		}
	}
	for k, v := range rc.Flags {
		vars[k] = v
	}
	vars[VarTargetDir] = rc.TargetDir
	vars[VarCreateName] = rc.CreateName
	return vars
}

// CreateName strips prefix from projectName, falling back to defaultName;
// it is empty when neither carries the prefix.
func CreateName(projectName, defaultName, prefix string) string {
	if prefix == "" {
		return ""
	}
	if strings.HasPrefix(projectName, prefix) {
		return strings.TrimPrefix(projectName, prefix)
	}
	if strings.HasPrefix(defaultName, prefix) {
		return strings.TrimPrefix(defaultName, prefix)
	}
	return ""
}

var funcMap = template.FuncMap{
	"snake":          strcase.ToSnake,
	"screamingSnake": strcase.ToScreamingSnake,
	"camel":          strcase.ToCamel,
	"lowerCamel":     strcase.ToLowerCamel,
	"kebab":          strcase.ToKebab,
	"upper":          strings.ToUpper,
	"lower":          strings.ToLower,
}

// Render executes text as a Go template against vars. Variables the
// template references but vars lacks render as empty strings.
func Render(name, text string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	data := normalize(vars)
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			fillMissing(t.Tree.Root, data, []map[string]any{data})
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// normalize deep-copies vars and turns nil values into "" at any depth.
func normalize(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars))
	for k, v := range vars {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case map[string]any:
		return normalize(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	default:
		return val
	}
}

// fillMissing walks a parse tree and adds an empty value for every field
// chain (.A or .A.B) absent from the maps dot may refer to. Inside range and
// with bodies dot is the element or value the operand resolves to.
func fillMissing(node parse.Node, root map[string]any, dot []map[string]any) {
	switch n := node.(type) {
	case nil:
		return
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			fillMissing(c, root, dot)
		}
	case *parse.ActionNode:
		fillMissing(n.Pipe, root, dot)
	case *parse.IfNode:
		fillMissing(n.Pipe, root, dot)
		fillMissing(n.List, root, dot)
		fillMissing(n.ElseList, root, dot)
	case *parse.RangeNode:
		// A missing range operand stays nil, which ranges over nothing.
		fillMissing(n.List, root, elementMaps(resolve(n.Pipe, root, dot)))
		fillMissing(n.ElseList, root, dot)
	case *parse.WithNode:
		fillMissing(n.Pipe, root, dot)
		fillMissing(n.List, root, valueMaps(resolve(n.Pipe, root, dot)))
		fillMissing(n.ElseList, root, dot)
	case *parse.TemplateNode:
		fillMissing(n.Pipe, root, dot)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, c := range n.Cmds {
			fillMissing(c, root, dot)
		}
	case *parse.CommandNode:
		for _, a := range n.Args {
			fillMissing(a, root, dot)
		}
	case *parse.ChainNode:
		fillMissing(n.Node, root, dot)
	case *parse.FieldNode:
		for _, m := range dot {
			ensurePath(m, n.Ident)
		}
	case *parse.VariableNode:
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			ensurePath(root, n.Ident[1:])
		}
	}
}

// resolve evaluates a pipeline made of a single field, $ reference or dot
// against every candidate dot. Anything more complex resolves to nothing.
func resolve(pipe *parse.PipeNode, root map[string]any, dot []map[string]any) []any {
	if pipe == nil || len(pipe.Cmds) != 1 || len(pipe.Cmds[0].Args) != 1 {
		return nil
	}
	var values []any
	switch arg := pipe.Cmds[0].Args[0].(type) {
	case *parse.DotNode:
		for _, m := range dot {
			values = append(values, m)
		}
	case *parse.FieldNode:
		for _, m := range dot {
			if v, ok := lookup(m, arg.Ident); ok {
				values = append(values, v)
			}
		}
	case *parse.VariableNode:
		if len(arg.Ident) > 0 && arg.Ident[0] == "$" {
			if v, ok := lookup(root, arg.Ident[1:]); ok {
				values = append(values, v)
			}
		}
	}
	return values
}

func lookup(m map[string]any, idents []string) (any, bool) {
	var cur any = m
	for _, id := range idents {
		nested, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, ok := nested[id]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// valueMaps keeps the values that are maps.
func valueMaps(values []any) []map[string]any {
	var maps []map[string]any
	for _, v := range values {
		if m, ok := v.(map[string]any); ok {
			maps = append(maps, m)
		}
	}
	return maps
}

// elementMaps returns the map elements a range over values visits.
func elementMaps(values []any) []map[string]any {
	var maps []map[string]any
	for _, v := range values {
		switch val := v.(type) {
		case []any:
			maps = append(maps, valueMaps(val)...)
		case map[string]any:
			for _, e := range val {
				if m, ok := e.(map[string]any); ok {
					maps = append(maps, m)
				}
			}
		}
	}
	return maps
}

func ensurePath(data map[string]any, idents []string) {
	if len(idents) == 0 {
		return
	}
	key := idents[0]
	cur, ok := data[key]
	if len(idents) == 1 {
		if !ok {
			data[key] = ""
		}
		return
	}
	if !ok {
		nested := make(map[string]any)
		data[key] = nested
		ensurePath(nested, idents[1:])
		return
	}
	if nested, isMap := cur.(map[string]any); isMap {
		ensurePath(nested, idents[1:])
	}
}

// RenderTree renders, in pre-order, every template file below root to its
// suffix-stripped path and removes the template. Two templates resolving to
// the same destination fail the pass with ErrRenderCollision.
func RenderTree(fsys afero.Fs, root string, conv convention.Conventions, rc RenderContext) ([]string, error) {
	produced := make(map[string]string)
	var written []string

	err := traverse.PreOrder(fsys, root, traverse.Noop, func(p string) error {
		dest, ok := conv.RenderTarget(p)
		if !ok {
			return nil
		}
		if prev, dup := produced[dest]; dup {
			return fmt.Errorf("%w: %s and %s both render to %s", ErrRenderCollision, prev, p, dest)
		}

		text, err := afero.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		out, err := Render(p, string(text), rc.For(dest))
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, dest, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		if err := fsys.Remove(p); err != nil {
			return fmt.Errorf("removing template: %w", err)
		}

		produced[dest] = p
		written = append(written, dest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

// CleanupStray removes every stray variant file below root, whatever
// features were chosen.
func CleanupStray(fsys afero.Fs, root string, conv convention.Conventions) ([]string, error) {
	var removed []string
	err := traverse.PreOrder(fsys, root, traverse.Noop, func(p string) error {
		if !conv.IsStray(p) {
			return nil
		}
		if err := fsys.Remove(p); err != nil {
			return err
		}
		removed = append(removed, p)
		return nil
	})
	return removed, err
}
