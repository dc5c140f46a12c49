package errors

import (
	"strings"
	"unicode"
)

// MaxPayloadBytes is the largest byte payload a version 40 symbol can hold
// at the lowest error-correction level.
const MaxPayloadBytes = 2953

// ValidatePayload checks that a formatted payload can be handed to the encoder.
//
// The rules are deliberately narrow; payload semantics are not inspected:
//   - No empty payloads
//   - No payloads larger than MaxPayloadBytes
func ValidatePayload(payload string) error {
	if payload == "" {
		return New(ErrCodeInvalidInput, "payload cannot be empty")
	}
	if len(payload) > MaxPayloadBytes {
		return New(ErrCodeInvalidInput, "payload too long (%d bytes, max %d)", len(payload), MaxPayloadBytes)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty ("-" and stdout handling happen before this check)
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port pair for the HTTP server.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	i := strings.LastIndex(addr, ":")
	if i < 0 || i == len(addr)-1 {
		return New(ErrCodeInvalidConfig, "listen address must be host:port, got %q", addr)
	}
	for _, r := range addr[i+1:] {
		if r < '0' || r > '9' {
			return New(ErrCodeInvalidConfig, "listen port must be numeric, got %q", addr[i+1:])
		}
	}
	return nil
}
