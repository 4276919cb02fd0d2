package http

import (
	"embed"
	"html/template"
	"time"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/service"
	"tradeacademy/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateFuncs are the helpers available to every page
var TemplateFuncs = template.FuncMap{
	// css marks a value computed by the service layer as a safe style fragment
	"css": func(s string) template.CSS { return template.CSS(s) },
	"rarityClass": func(r domain.Rarity) string {
		return service.RarityClass(r)
	},
	"rarityBadgeClass": func(r domain.Rarity) string {
		return service.RarityBadgeClass(r)
	},
	"date":  utils.Date,
	"money": utils.Money,
	"since": func(t time.Time) string {
		return utils.Since(t, utils.Now())
	},
}

// ParseTemplates parses the embedded page templates
func ParseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(TemplateFuncs).ParseFS(templateFS, "templates/*.html")
}
