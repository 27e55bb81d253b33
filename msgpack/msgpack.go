// Package msgpack serializes block token streams to MessagePack.
package msgpack

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/fwojciec/blockmark"
	"github.com/vmihailenco/msgpack/v5"
)

// Version is the envelope version written by MarshalTokens.
const Version = 1

type envelope struct {
	Version int        `msgpack:"version"`
	Tokens  []tokenDTO `msgpack:"tokens"`
}

// tokenDTO stores offsets and levels narrowed to fixed-width integers.
type tokenDTO struct {
	Kind   uint8  `msgpack:"kind"`
	Level  uint8  `msgpack:"level,omitempty"`
	Text   string `msgpack:"text"`
	Offset uint32 `msgpack:"offset"`
}

// MarshalTokens serializes tokens to a MessagePack envelope.
func MarshalTokens(tokens []blockmark.Token) ([]byte, error) {
	env := envelope{
		Version: Version,
		Tokens:  make([]tokenDTO, len(tokens)),
	}
	for i, tok := range tokens {
		if err := tok.Validate(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		off, err := safecast.Conv[uint32](tok.Offset)
		if err != nil {
			return nil, fmt.Errorf("token %d offset: %w", i, err)
		}
		level, err := safecast.Conv[uint8](tok.Level)
		if err != nil {
			return nil, fmt.Errorf("token %d level: %w", i, err)
		}
		env.Tokens[i] = tokenDTO{
			Kind:   uint8(tok.Kind),
			Level:  level,
			Text:   tok.Text,
			Offset: off,
		}
	}
	return msgpack.Marshal(&env)
}

// UnmarshalTokens deserializes tokens from a MessagePack envelope.
func UnmarshalTokens(data []byte) ([]blockmark.Token, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != Version {
		return nil, fmt.Errorf("envelope version %d: %w", env.Version, blockmark.ErrUnsupportedVersion)
	}
	tokens := make([]blockmark.Token, len(env.Tokens))
	for i, dto := range env.Tokens {
		tok := blockmark.Token{
			Kind:   blockmark.Kind(dto.Kind),
			Level:  int(dto.Level),
			Text:   dto.Text,
			Offset: int(dto.Offset),
		}
		if err := tok.Validate(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens[i] = tok
	}
	return tokens, nil
}
