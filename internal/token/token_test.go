package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple json", `{"title":"My Deck","slides":[{"html":"<h1>Slide 1</h1>"}]}`},
		{"unicode content", `{"title":"Präsentation 🎨","slides":[{"notes":"日本語のノート","markdown":"# Ünïcödé"}]}`},
		{"whitespace and symbols", "tabs\tnewlines\nand &?=+/% symbols"},
		{"single char", "x"},
		{"large document", strings.Repeat(`{"markdown":"# Slide with some repeated content"},`, 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Encode(tt.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := Decode(tok)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.input {
				t.Errorf("round trip mismatch:\nwant %q\ngot  %q", tt.input, got)
			}
		})
	}
}

func TestEncodeIsURLSafe(t *testing.T) {
	tok, err := Encode(`{"title":"URL safety","slides":[{"notes":"& ? = # + % 日本語"}]}`)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"
	for _, r := range tok {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("token contains non-URL-safe character %q: %s", r, tok)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"empty", ""},
		{"plain text", "not-a-token"},
		{"truncated", func() string {
			tok, _ := Encode(`{"title":"truncate me","slides":[]}`)
			return tok[:len(tok)/2]
		}()},
		{"characters outside the alphabet", "!!!%%%///"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The only requirement is a clean error, never a panic.
			if _, err := Decode(tt.tok); err != nil && !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Decode error should wrap ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("decode is the left inverse of encode", prop.ForAll(
		func(s string) bool {
			tok, err := Encode(s)
			if err != nil {
				return false
			}
			got, err := Decode(tok)
			return err == nil && got == s
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("encode is deterministic", prop.ForAll(
		func(s string) bool {
			a, errA := Encode(s)
			b, errB := Encode(s)
			return errA == nil && errB == nil && a == b
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.TestingRun(t)
}
