// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Student is the core entity in the system, representing a single student account.
// The password hash never lives here; credentials are a separate entity so the
// student record can be returned to callers without scrubbing.
type Student struct {
	ID        uuid.UUID // Store-assigned identifier, immutable after creation.
	Name      string    // Full display name, e.g. "Jane Doe".
	Email     string    // Unique login key. No endpoint mutates it.
	Course    string    // Enrolled course of study, surfaced externally as "department".
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// FirstName returns the first whitespace-delimited token of the student's name.
func (s *Student) FirstName() string {
	first, _ := SplitName(s.Name)

	return first
}

// LastName returns everything after the first name token, or "" if the name
// has a single token.
func (s *Student) LastName() string {
	_, last := SplitName(s.Name)

	return last
}

// SplitName decomposes a full name into its first token and the remainder.
// The remainder keeps its internal spacing so JoinName can round-trip it.
func SplitName(name string) (first, last string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ""
	}

	parts := strings.Fields(trimmed)
	first = parts[0]
	last = strings.Join(parts[1:], " ")

	return first, last
}

// JoinName recombines first and last name into a single stored name.
// An empty last name yields no trailing space.
func JoinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
