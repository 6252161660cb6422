package store

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrDecode is returned when a persisted line cannot be decoded. Callers
// treat it as non-fatal: the line is dropped and loading continues.
var ErrDecode = errors.New("cannot decode line")

// Codec is the reversible transform applied to each line before it is
// written and after it is read. It is an implementation detail of the file
// format, not a security boundary: the default codec is a toy obfuscation
// with no confidentiality guarantee.
type Codec interface {
	Encode(line string) string
	Decode(line string) (string, error)
}

// PlainCodec passes lines through unchanged. Useful for tests and for
// inspecting data files by hand.
type PlainCodec struct{}

// Encode returns the line unchanged.
func (PlainCodec) Encode(line string) string { return line }

// Decode returns the line unchanged.
func (PlainCodec) Decode(line string) (string, error) { return line, nil }

// KeyCodec obfuscates each line by XOR-ing it with a repeating key and
// hex-encoding the result.
type KeyCodec struct {
	key []byte
}

// NewKeyCodec creates a KeyCodec. An empty key degenerates to plain hex.
func NewKeyCodec(key string) *KeyCodec {
	return &KeyCodec{key: []byte(key)}
}

func (c *KeyCodec) xor(data []byte) []byte {
	if len(c.key) == 0 {
		return data
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

// Encode obfuscates and hex-encodes the line.
func (c *KeyCodec) Encode(line string) string {
	return hex.EncodeToString(c.xor([]byte(line)))
}

// Decode reverses Encode. Lines that are not valid hex fail with ErrDecode.
func (c *KeyCodec) Decode(line string) (string, error) {
	raw, err := hex.DecodeString(line)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(c.xor(raw)), nil
}
