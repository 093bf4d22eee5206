package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// LogicalID is a portal logical identifier: a UUIDv4 optionally glued to a
// lowercase kind prefix, e.g. "gateway01234567-89ab-cdef-0123-456789abcdef".
// Equality is structural over (prefix, uuid), so case differences in the
// UUID portion do not matter. The zero value is the empty ID.
type LogicalID struct {
	prefix string
	id     uuid.UUID
}

// ParseLogicalID parses a logical ID token. The token must end in a valid
// UUID; any leading characters form the kind prefix.
func ParseLogicalID(s string) (LogicalID, error) {
	if len(s) < 36 {
		return LogicalID{}, &InvalidLogicalIDError{Value: s}
	}
	prefix, raw := s[:len(s)-36], s[len(s)-36:]
	id, err := uuid.Parse(raw)
	if err != nil {
		return LogicalID{}, &InvalidLogicalIDError{Value: s}
	}
	return LogicalID{prefix: strings.ToLower(prefix), id: id}, nil
}

// Prefix returns the kind prefix, which may be empty.
func (l LogicalID) Prefix() string { return l.prefix }

// UUID returns the UUID portion.
func (l LogicalID) UUID() uuid.UUID { return l.id }

// IsZero reports whether l is the empty ID.
func (l LogicalID) IsZero() bool { return l == LogicalID{} }

// String renders the canonical form: lowercase prefix followed by the
// lowercase hyphenated UUID.
func (l LogicalID) String() string { return l.prefix + l.id.String() }

// MarshalJSON encodes l as its canonical string.
func (l LogicalID) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a logical ID string token.
func (l *LogicalID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &InvalidLogicalIDError{Value: string(b)}
	}
	parsed, err := ParseLogicalID(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// InvalidLogicalIDError reports a token that does not end in a valid UUID.
type InvalidLogicalIDError struct {
	Value string
}

func (e *InvalidLogicalIDError) Error() string {
	return fmt.Sprintf("invalid logical id: %q", e.Value)
}
