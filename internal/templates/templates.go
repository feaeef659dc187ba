package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed files
var templateFS embed.FS

var titleCaser = cases.Title(language.English)

// Data holds all variables available to project file templates.
type Data struct {
	Name           string // directory-safe project name, e.g. "my-app"
	DisplayName    string // derived title, e.g. "My App"
	Description    string
	Author         string
	Year           int
	PackageManager string // "npm", "yarn", or "pnpm"
}

// NewData creates a Data with derived fields populated.
func NewData(name, description, author, packageManager string) *Data {
	return &Data{
		Name:           name,
		DisplayName:    DisplayTitle(name),
		Description:    description,
		Author:         author,
		Year:           time.Now().Year(),
		PackageManager: packageManager,
	}
}

// DisplayTitle turns a directory-safe name like "my-app" into "My App".
func DisplayTitle(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(cleaned)
}

// render executes the named embedded template against data.
func render(name string, data *Data) (string, error) {
	raw, err := templateFS.ReadFile("files/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Readme renders the project README.md.
func Readme(data *Data) (string, error) {
	return render("readme.md.tmpl", data)
}

// IndexHTML renders the static-site src/index.html.
func IndexHTML(data *Data) (string, error) {
	return render("index.html.tmpl", data)
}

// StylesCSS renders the static-site src/styles.css.
func StylesCSS(data *Data) (string, error) {
	return render("styles.css.tmpl", data)
}

// MainJS renders the static-site src/main.js.
func MainJS(data *Data) (string, error) {
	return render("main.js.tmpl", data)
}

// PackageJSON renders the static-site package.json.
func PackageJSON(data *Data) (string, error) {
	return render("package.json.tmpl", data)
}

// AppJSX renders the React router-enabled src/App.jsx.
func AppJSX(data *Data) (string, error) {
	return render("app.jsx.tmpl", data)
}

// HomePageJSX renders the React src/pages/Home.jsx.
func HomePageJSX(data *Data) (string, error) {
	return render("page-home.jsx.tmpl", data)
}

// AboutPageJSX renders the React src/pages/About.jsx.
func AboutPageJSX(data *Data) (string, error) {
	return render("page-about.jsx.tmpl", data)
}

// ESLintRC renders the .eslintrc config stub.
func ESLintRC(data *Data) (string, error) {
	return render("eslintrc.tmpl", data)
}

// PrettierRC renders the .prettierrc config stub.
func PrettierRC(data *Data) (string, error) {
	return render("prettierrc.tmpl", data)
}

// GitIgnore renders the .gitignore body.
func GitIgnore(data *Data) (string, error) {
	return render("gitignore.tmpl", data)
}

// ESLintIgnore renders the .eslintignore body.
func ESLintIgnore(data *Data) (string, error) {
	return render("eslintignore.tmpl", data)
}

// PrettierIgnore renders the .prettierignore body.
func PrettierIgnore(data *Data) (string, error) {
	return render("prettierignore.tmpl", data)
}
