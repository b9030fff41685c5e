// Package api holds the OpenAPI description of the HTTP API.
package api

import _ "embed"

// OpenAPI is the raw podinfo.openapi.yaml document.
//
//go:embed podinfo.openapi.yaml
var OpenAPI []byte
