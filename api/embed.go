// Package api holds the OpenAPI contract of the HTTP surface.
package api

import _ "embed"

// Spec is the raw OpenAPI 3 document served at /swagger and used for request
// validation.
//
//go:embed openapi.yml
var Spec []byte
