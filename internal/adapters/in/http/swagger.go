package http

import (
	"sync"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDoc sync.Once

// swaggerDoc serves a prerendered JSON document to Swagger UI.
type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

// mountSwagger registers spec with swag and serves Swagger UI under /swagger.
// swag keeps a process-wide registry, so only the first spec is registered.
func mountSwagger(e *echo.Echo, spec []byte) {
	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc(spec))
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
