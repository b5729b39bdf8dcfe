// Package openapi holds the HTTP contract of the service: the embedded
// OpenAPI 3 document, the wire types it describes, and the echo bindings
// that decode path and query parameters before calling a ServerInterface.
package openapi

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// SpecJSON renders the document as JSON for Swagger UI.
func SpecJSON() ([]byte, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
