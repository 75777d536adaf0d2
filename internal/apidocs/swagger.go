package apidocs

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	DocsPath      = "/v3/api-docs"
	SwaggerUIPath = "/swagger-ui"
	swaggerIndex  = SwaggerUIPath + "/index.html"
)

// Register exposes the document as JSON and the bundled Swagger UI pointed at it.
func Register(e *echo.Echo, doc *openapi3.T) {
	e.GET(DocsPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})

	e.GET(SwaggerUIPath, func(c echo.Context) error {
		return c.Redirect(http.StatusFound, swaggerIndex)
	})
	e.GET(SwaggerUIPath+"/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL(DocsPath),
		echoSwagger.DeepLinking(true),
	))
}
