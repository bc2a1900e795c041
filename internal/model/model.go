// Package model contains the data structures exchanged by the gateway layers.
// Document bodies are kept as raw JSON: the gateway never interprets user attributes.
package model

// Collection is the gateway view of a collection.
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	IsSystem bool   `json:"is_system"`
}

// ServerVersion identifies the database server behind the gateway.
type ServerVersion struct {
	Server  string `json:"server"`
	Version string `json:"version"`
	License string `json:"license,omitempty"`
}
