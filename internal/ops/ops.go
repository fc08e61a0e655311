// Package ops implements the application operations shared by the CLI, the
// MCP server, and the web UI. Each operation takes an Input struct and
// returns an Output struct; validation and addressing rules live here so
// every surface behaves identically.
package ops

import (
	"strings"

	"github.com/hollisgrant/vitae/internal/errors"
	"github.com/hollisgrant/vitae/internal/resume"
)

// Pagination limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// Address represents a validated resume address.
type Address struct {
	ByID bool
	ID   string
	Name string // normalized
}

// ValidateAddress validates addressing parameters and returns a normalized
// Address. Exactly one of id or name must be provided.
func ValidateAddress(id, name string) (*Address, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)

	hasID := id != ""
	hasName := name != ""

	if hasID && hasName {
		return nil, errors.NewInvalidRequest("specify either id or name, not both")
	}
	if !hasID && !hasName {
		return nil, errors.NewInvalidRequest("must specify either id or name")
	}

	if hasID {
		return &Address{ByID: true, ID: id}, nil
	}

	nameNorm := resume.Normalize(name)
	if nameNorm == "" {
		return nil, errors.NewInvalidRequest("name must not be empty")
	}

	return &Address{ByID: false, Name: nameNorm}, nil
}

// cleanOptionalString trims an optional string and drops it entirely when
// the result is empty.
func cleanOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
