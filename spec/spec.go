// Package spec embeds the OpenAPI document for the label catalog API.
// The HTTP server serves it at /openapi.yaml and the request validator
// middleware checks incoming requests against it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
