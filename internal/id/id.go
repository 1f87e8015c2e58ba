// Package id generates prefixed unique identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for the identifier kinds used across the application.
const (
	PrefixClient = "client"
	PrefixEvent  = "evt"
)

// Generate creates a prefixed unique ID using NanoID
// Format: prefix-nanoid (e.g., "acct-V1StGXR8_Z5jdHi6B-myT")
//
// NanoIDs are URL-friendly, compact (21 characters vs UUID's 36),
// and use a larger alphabet for better entropy per character.
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
// Use this only when failure should crash the program (e.g., during initialization).
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewClientID generates an identifier for a connected event stream client.
func NewClientID() string {
	return MustGenerate(PrefixClient)
}

// NewEventID generates an identifier for a broadcast event.
func NewEventID() string {
	return MustGenerate(PrefixEvent)
}
