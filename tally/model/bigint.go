package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
)

// BigInt is an arbitrary-precision integer decoded from either a JSON string
// or a JSON number. Vote counts and token amounts routinely exceed 2^53.
type BigInt struct {
	value *big.Int
}

// NewBigInt parses a base-10 integer literal.
func NewBigInt(literal string) (BigInt, error) {
	v, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid integer: %q", literal)
	}
	return BigInt{value: v}, nil
}

// Int returns the underlying value, nil when absent.
func (b BigInt) Int() *big.Int { return b.value }

// IsSet reports whether a value was decoded.
func (b BigInt) IsSet() bool { return b.value != nil }

// String returns the base-10 literal or an empty string when absent.
func (b BigInt) String() string {
	if b.value == nil {
		return ""
	}
	return b.value.String()
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		b.value = nil
		return nil
	}
	literal := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &literal); err != nil {
			return err
		}
		if literal == "" {
			b.value = nil
			return nil
		}
	}
	v, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		// numbers encoded in exponent form by some gateways
		f, _, err := big.ParseFloat(literal, 10, 256, big.ToNearestEven)
		if err != nil {
			return fmt.Errorf("invalid integer: %s", literal)
		}
		v, _ = f.Int(nil)
	}
	b.value = v
	return nil
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	if b.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.value.String())
}
