// Package cachekey derives deterministic cache keys from an operation and its arguments.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

const prefix = "cache:"

// Operation identifies a cached read operation. TTL is fixed per operation.
type Operation struct {
	Name string
	TTL  time.Duration
}

// keyData is serialized as the canonical form of a call.
// encoding/json writes map keys in sorted order, which makes kwargs order-independent.
type keyData struct {
	FuncName string         `json:"func_name"`
	Args     []any          `json:"args"`
	Kwargs   map[string]any `json:"kwargs"`
}

// Canonical returns the canonical JSON form of a call.
func Canonical(op string, args []any, kwargs map[string]any) ([]byte, error) {
	if args == nil {
		args = []any{}
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	b, err := json.Marshal(keyData{FuncName: op, Args: args, Kwargs: kwargs})
	if err != nil {
		return nil, fmt.Errorf("canonical form of %s: %w", op, err)
	}
	return b, nil
}

// Derive returns "cache:" + hex(sha256(canonical form)).
func Derive(op string, args []any, kwargs map[string]any) (string, error) {
	canonical, err := Canonical(op, args, kwargs)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return prefix + hex.EncodeToString(sum[:]), nil
}
