package scaffold

import (
	"bytes"
	"text/template"

	"github.com/xx-labs/create-xx/internal/pkgmanager"
)

// ReadmeData selects the sections of a generated README.
type ReadmeData struct {
	ProjectName    string
	PackageManager string
	TypeScript     bool
	Eslint         bool
}

const readmeSource = `# {{ .ProjectName }}

This project was scaffolded with create-xx.
{{ if .TypeScript }}
## Type Support

Type checking runs through ` + "`tsc`" + ` as part of the build. Editors that use the
TypeScript language service pick up the project's tsconfig automatically.
{{ end }}
## Project Setup

` + "```sh" + `
{{ cmd "install" }}
` + "```" + `

### Compile and Hot-Reload for Development

` + "```sh" + `
{{ cmd "dev" }}
` + "```" + `

### {{ if .TypeScript }}Type-Check, {{ end }}Compile and Minify for Production

` + "```sh" + `
{{ cmd "build" }}
` + "```" + `
{{ if .Eslint }}
### Lint with [ESLint](https://eslint.org/)

` + "```sh" + `
{{ cmd "lint" }}
` + "```" + `
{{ end }}`

// GenerateReadme renders the fallback README used when the template ships
// none.
func GenerateReadme(d ReadmeData) (string, error) {
	pm := d.PackageManager
	if pm == "" {
		pm = pkgmanager.NPM
	}
	tmpl, err := template.New("README.md").Funcs(template.FuncMap{
		"cmd": func(script string) string { return pkgmanager.Command(pm, script) },
	}).Parse(readmeSource)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
