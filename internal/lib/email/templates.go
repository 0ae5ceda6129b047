package email

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContact corresponds to templates/contact.{html,txt}
	TemplateContact Template = "contact"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// render executes both variants of a template. The HTML variant escapes
// every value, so user input cannot inject markup into the email.
func render(name Template, data any) (html string, text string, err error) {
	var htmlBody bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&htmlBody, string(name)+".html", data); err != nil {
		return "", "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	var textBody bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&textBody, string(name)+".txt", data); err != nil {
		return "", "", errors.Wrapf(err, "failed to execute text email template %s", name)
	}

	return htmlBody.String(), textBody.String(), nil
}
