// Package swaggerkit serves the embedded OpenAPI document and the Swagger UI
package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"qanda/internal/platform/logger"
	phttp "qanda/internal/platform/net/http"
)

//go:embed openapi.json
var rawDoc []byte

const (
	docsPrefix = "/api/docs"
	docURL     = docsPrefix + "/doc.json"
)

// SpecMutator lets callers tweak the parsed document before it is served
type SpecMutator func(map[string]any)

// Mount serves the UI under /api/docs and the document at /api/docs/doc.json when enabled
func Mount(r phttp.Router, enabled bool, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	doc, err := Document(mutators...)
	if err != nil {
		logger.Named("swagger").Error().Err(err).Msg("openapi document unusable; docs not mounted")
		return
	}
	r.Get(docsPrefix, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsPrefix+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(docURL, phttp.ServeStatic("application/json; charset=utf-8", doc))
	phttp.MountSwagger(r, docsPrefix, docURL, true)
}

// Document returns the served JSON: the embedded document with servers, the error
// envelope schema and default error responses filled in
func Document(mutators ...SpecMutator) ([]byte, error) {
	var spec map[string]any
	if err := json.Unmarshal(rawDoc, &spec); err != nil {
		return nil, err
	}
	ensureServers(spec, "/api/v1")
	ensureErrorResponse(spec)
	addDefaultResponses(spec)
	for _, m := range mutators {
		if m != nil {
			m(spec)
		}
	}
	return json.Marshal(spec)
}

func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponse adds the error envelope schema when the document lacks one
func ensureErrorResponse(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status", "error"},
	}
}

func errorResponse(description string, example map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// addDefaultResponses gives every operation a 400 and a 500 response unless it declares one
func addDefaultResponses(spec map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	defaults := map[string]map[string]any{
		"400": errorResponse("Bad Request", map[string]any{
			"status_code": 400,
			"status":      "Bad Request",
			"code":        4,
			"error":       "id parameter must be numeric",
			"field":       "id",
		}),
		"500": errorResponse("Internal Server Error", map[string]any{
			"status_code": 500,
			"status":      "Internal Server Error",
			"code":        1,
			"error":       "internal server error",
		}),
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			for code, resp := range defaults {
				if _, exists := responses[code]; !exists {
					responses[code] = resp
				}
			}
		}
	}
}
