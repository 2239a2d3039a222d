package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventbook/server/internal/api/problem"
	"github.com/eventbook/server/internal/graph"
	"github.com/graphql-go/graphql"
)

const maxRequestBytes = 1 << 20 // 1 MB

type GraphQLHandler struct {
	Schema graphql.Schema
	Env    string
}

func NewGraphQLHandler(schema graphql.Schema, env string) *GraphQLHandler {
	return &GraphQLHandler{Schema: schema, Env: env}
}

// Execute serves POST /graphql. Malformed transport payloads get a 400
// problem response; operation failures ride back inside the GraphQL
// error list with status 200, and the process keeps serving.
func (h *GraphQLHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req graph.Request
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, "https://eventbook.dev/problems/invalid-request", "Invalid request", err, h.Env)
		return
	}
	if req.Query == "" {
		problem.Write(w, r, http.StatusBadRequest, "https://eventbook.dev/problems/invalid-request", "Invalid request", errMissingQuery, h.Env)
		return
	}

	result := graph.Execute(r.Context(), h.Schema, req)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

var errMissingQuery = errors.New("request body must include a query")
