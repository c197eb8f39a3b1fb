// Package api holds the OpenAPI document of the HTTP interface.
package api

import _ "embed"

// OpenAPISpec is the raw openapi.yml served at /openapi.yml and used for request validation.
//
//go:embed openapi.yml
var OpenAPISpec []byte
