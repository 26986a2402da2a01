package api

import (
	"embed"
	"html/template"
	"strings"

	"github.com/Domenick1991/farecast/internal/currency"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates installs the page templates on the router.
func LoadTemplates(router *gin.Engine) {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"formatINR":  currency.FormatINR,
		"formatIDR":  currency.FormatIDR,
		"modelLabel": modelLabel,
	}).ParseFS(templateFS, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)
}

// modelLabel turns a model type such as "random_forest" into "Random Forest".
func modelLabel(kind string) string {
	if kind == "" {
		return "unavailable"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(kind, "_", " "))
}
