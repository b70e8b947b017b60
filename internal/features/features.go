// Package features holds the feature flags a user can pass on the command
// line and turns them into template variables.
package features

import (
	"sort"
	"strings"
)

// Flag describes one recognized boolean option.
type Flag struct {
	Name    string
	Aliases []string
	Usage   string
}

// Recognized lists every flag the bundled templates understand.
var Recognized = []Flag{
	{Name: "default", Usage: "Accept the default feature set"},
	{Name: "typescript", Aliases: []string{"ts"}, Usage: "Add TypeScript"},
	{Name: "jsx", Usage: "Add JSX support"},
	{Name: "router", Aliases: []string{"vue-router"}, Usage: "Add a router"},
	{Name: "pinia", Usage: "Add Pinia state management"},
	{Name: "eslint", Usage: "Add ESLint"},
	{Name: "eslint-with-prettier", Usage: "Add ESLint with Prettier"},
	{Name: "with-tests", Aliases: []string{"tests"}, Usage: "Add test tooling"},
	{Name: "prod", Usage: "Render templates for production (NODE_ENV=production)"},
	{Name: "force", Usage: "Overwrite a non-empty target directory without asking"},
}

// Features is the typed set of flags for one run. Extra carries passthrough
// flags the tool does not know about, so newer templates can still read them.
type Features struct {
	Default            bool
	TypeScript         bool
	JSX                bool
	Router             bool
	Pinia              bool
	Eslint             bool
	EslintWithPrettier bool
	WithTests          bool
	Prod               bool
	Force              bool

	Extra map[string]bool
}

// Mode values of NODE_ENV.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// NormalizeKey maps a flag name to its template variable, e.g.
// "eslint-with-prettier" → "ESLINT_WITH_PRETTIER".
func NormalizeKey(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Values returns the state of every recognized flag by name.
func (f Features) Values() map[string]bool {
	return map[string]bool{
		"default":              f.Default,
		"typescript":           f.TypeScript,
		"jsx":                  f.JSX,
		"router":               f.Router,
		"pinia":                f.Pinia,
		"eslint":               f.Eslint,
		"eslint-with-prettier": f.EslintWithPrettier,
		"with-tests":           f.WithTests,
		"prod":                 f.Prod,
		"force":                f.Force,
	}
}

// Set turns on a flag by name or alias. Unknown names go to Extra.
func (f *Features) Set(name string) {
	switch canonical(name) {
	case "default":
		f.Default = true
	case "typescript":
		f.TypeScript = true
	case "jsx":
		f.JSX = true
	case "router":
		f.Router = true
	case "pinia":
		f.Pinia = true
	case "eslint":
		f.Eslint = true
	case "eslint-with-prettier":
		f.EslintWithPrettier = true
	case "with-tests":
		f.WithTests = true
	case "prod":
		f.Prod = true
	case "force":
		f.Force = true
	default:
		if f.Extra == nil {
			f.Extra = make(map[string]bool)
		}
		f.Extra[name] = true
	}
}

func canonical(name string) string {
	for _, fl := range Recognized {
		if fl.Name == name {
			return fl.Name
		}
		for _, a := range fl.Aliases {
			if a == name {
				return fl.Name
			}
		}
	}
	return ""
}

// Mode returns the NODE_ENV value for this run.
func (f Features) Mode() string {
	if f.Prod {
		return ModeProduction
	}
	return ModeDevelopment
}

// Normalize returns the flags as template variables. Every recognized flag
// and alias is present (false when unset), passthrough flags are added as
// true, and NODE_ENV reflects Prod.
func (f Features) Normalize() map[string]any {
	out := make(map[string]any)
	values := f.Values()
	for _, fl := range Recognized {
		on := values[fl.Name]
		out[NormalizeKey(fl.Name)] = on
		for _, a := range fl.Aliases {
			out[NormalizeKey(a)] = on
		}
	}
	for name, on := range f.Extra {
		out[NormalizeKey(name)] = on
	}
	out["NODE_ENV"] = f.Mode()
	return out
}

// Enabled returns the names of the recognized and passthrough flags that are
// on, sorted.
func (f Features) Enabled() []string {
	var names []string
	for name, on := range f.Values() {
		if on {
			names = append(names, name)
		}
	}
	for name, on := range f.Extra {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
