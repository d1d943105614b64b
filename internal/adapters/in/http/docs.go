package http

import (
	"encoding/json"
	"net/http"

	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}

// registerDocs exposes the UI at /swagger/index.html and the document at
// /openapi.json.
func registerDocs(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", func(c echo.Context) error {
		doc, err := servers.GetSwagger()
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, doc)
	})
}
