package docs

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// DefaultAssetsURL serves the Swagger UI bundle from a public CDN.
const DefaultAssetsURL = "https://unpkg.com/swagger-ui-dist@5"

//go:embed swagger_ui.html.tmpl
var swaggerUITemplate string

var swaggerUI = template.Must(template.New("swagger-ui").Parse(swaggerUITemplate))

// UIConfig parameterizes the Swagger UI page.
type UIConfig struct {
	Title     string
	SpecURL   string
	AssetsURL string
}

// RenderUI executes the Swagger UI page template.
func RenderUI(cfg UIConfig) ([]byte, error) {
	if cfg.AssetsURL == "" {
		cfg.AssetsURL = DefaultAssetsURL
	}

	var buf bytes.Buffer
	if err := swaggerUI.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("error rendering swagger ui: %w", err)
	}
	return buf.Bytes(), nil
}
