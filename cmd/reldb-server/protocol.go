// Package main provides an HTTP server for RelDB.
package main

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reldb/reldb/ps"
)

// QueryRequest carries one statement to execute.
type QueryRequest struct {
	Query string `json:"query"`
}

// HistoryResponse lists every command the engine has seen.
type HistoryResponse struct {
	History []string `json:"history"`
}

// SaveRequest names a snapshot commit.
type SaveRequest struct {
	Message string `json:"message"`
}

// VersionsResponse lists saved snapshot versions, most recent first.
type VersionsResponse struct {
	Versions []ps.Version `json:"versions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
