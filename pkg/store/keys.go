package store

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// The host filesystem treats path separators as structure, and diskv
// treats "-" as the segment joiner, so scope components and flag names
// are escaped before they ever touch a key. None of this leaks out of
// this package: in-memory structures always hold the raw names.

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `scopePart...-flag` with every segment escaped.
func toKey(scope, flag string) string {
	parts := strings.Split(scope, "/")
	enc := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		enc = append(enc, encodeSegment(p))
	}
	enc = append(enc, protectKey(flag))
	return strings.Join(enc, "-")
}

// fromKey reverses toKey, returning the scope and flag name.
func fromKey(key string) (string, string, bool) {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return "", "", false
	}
	scope := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		dec, err := decodeSegment(p)
		if err != nil {
			return "", "", false
		}
		scope = append(scope, dec)
	}
	return strings.Join(scope, "/"), unprotectKey(parts[len(parts)-1]), true
}

// Scope segments are base32-encoded: the alphabet is free of "-", "/",
// and ".", so encoded directories can never collide with the joiner or
// the host's path structure.
func encodeSegment(s string) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString([]byte(s))
}

func decodeSegment(s string) (string, error) {
	b, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var (
	protector   = strings.NewReplacer("%", "%25", ".", "%2E", "-", "%2D", "/", "%2F")
	unprotector = strings.NewReplacer("%2F", "/", "%2D", "-", "%2E", ".", "%25", "%")
)

// protectKey escapes characters the host storage would interpret as
// path structure. Flag names stay human-readable on disk.
func protectKey(s string) string { return protector.Replace(s) }

func unprotectKey(s string) string { return unprotector.Replace(s) }
