package rendering

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/natejswenson/portfolio-engine/internal/icons"
	"github.com/natejswenson/portfolio-engine/internal/types"
)

//go:embed portfolio.html.tmpl
var defaultTemplate string

// RenderHTML renders a portfolio page from a display model. When templatePath
// is empty the embedded default template is used. Icon tokens are resolved
// through the resolver once per token at paint time; unknown tokens degrade
// silently to the default glyph, so rendering a model with missing icons
// still succeeds.
func RenderHTML(model *types.DisplayModel, resolver *icons.Resolver, templatePath string) (string, error) {
	if model == nil {
		return "", &RenderError{Message: "display model is nil"}
	}
	if resolver == nil {
		resolver = icons.NewResolver(nil)
	}

	tmpl, err := parseTemplate(templatePath, resolver)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, model); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate loads and parses the page template, wiring the icon resolver
// into the template function map.
func parseTemplate(templatePath string, resolver *icons.Resolver) (*template.Template, error) {
	content := defaultTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(data)
	}

	tmpl, err := template.New("portfolio").Funcs(template.FuncMap{
		"icon": resolver.Resolve,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
