package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../../api/oapi-codegen.types.yaml ../../../api/openapi.yml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../../api/oapi-codegen.server.yaml ../../../api/openapi.yml

import (
	"logistics/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger parses the OpenAPI document embedded in package api. External
// references are rejected.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	return loader.LoadFromData(api.Spec)
}
