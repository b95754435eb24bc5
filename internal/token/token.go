// Package token turns a serialized deck into a compact string that can ride
// in a URL query parameter, and back. The transform is the lz-string
// "EncodedURIComponent" variant: deterministic, lossless for arbitrary
// Unicode text, and restricted to an alphabet that needs no percent-escaping.
package token

import (
	"errors"
	"fmt"

	lzstring "github.com/daku10/go-lz-string"
)

// ErrInvalidToken reports a token that could not be decompressed back into
// a deck document.
var ErrInvalidToken = errors.New("invalid deck token")

// Encode compresses s into a URL-safe token.
func Encode(s string) (string, error) {
	out, err := lzstring.CompressToEncodedURIComponent(s)
	if err != nil {
		return "", fmt.Errorf("encode deck token: %w", err)
	}
	return out, nil
}

// Decode reverses Encode. Malformed or truncated tokens yield
// ErrInvalidToken, never a panic, so a bad link can be answered with a
// client error.
func Decode(tok string) (_ string, err error) {
	if tok == "" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	// Decompression of attacker-supplied garbage must not take the caller
	// down with it.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidToken, r)
		}
	}()
	out, derr := lzstring.DecompressFromEncodedURIComponent(tok)
	if derr != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, derr)
	}
	return out, nil
}
