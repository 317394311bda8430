package handler

import (
	"net/http"

	"github.com/graphql-go/graphql"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, schema graphql.Schema) {
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("POST /graphql", HandleGraphQL(schema))
	mux.HandleFunc("GET /{$}", HandleGraphiQL)
}
