// Package json serializes block token streams to a versioned JSON envelope.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/blockmark"
)

// Version is the envelope version written by MarshalTokens.
const Version = 1

// envelope is the v1 wire format for a token dump.
type envelope struct {
	Version int        `json:"version"`
	Tokens  []tokenDTO `json:"tokens"`
}

// tokenDTO is the JSON representation of a Token with a kind discriminator.
type tokenDTO struct {
	Kind   string `json:"kind"`
	Level  int    `json:"level,omitempty"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

// MarshalTokens serializes tokens to JSON in v1 envelope format.
func MarshalTokens(tokens []blockmark.Token) ([]byte, error) {
	env := envelope{
		Version: Version,
		Tokens:  make([]tokenDTO, len(tokens)),
	}
	for i, tok := range tokens {
		if err := tok.Validate(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		env.Tokens[i] = tokenDTO{
			Kind:   tok.Kind.String(),
			Level:  tok.Level,
			Text:   tok.Text,
			Offset: tok.Offset,
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalTokens deserializes tokens from JSON in v1 envelope format.
func UnmarshalTokens(data []byte) ([]blockmark.Token, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("envelope version %d: %w", env.Version, blockmark.ErrUnsupportedVersion)
	}
	tokens := make([]blockmark.Token, len(env.Tokens))
	for i, dto := range env.Tokens {
		kind, err := blockmark.ParseKind(dto.Kind)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tok := blockmark.Token{Kind: kind, Level: dto.Level, Text: dto.Text, Offset: dto.Offset}
		if err := tok.Validate(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Load reads a token dump from a JSON file.
func Load(path string) ([]blockmark.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalTokens(data)
}
