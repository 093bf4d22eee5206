package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// TinyInt is a boolean the portal transmits as the integer 0 or 1, the way
// databases without a native boolean column type store flags. Decoding is
// strict: any integer other than 0 or 1 is a decode error, never coerced to
// true the way a C-style truthiness check would. That strictness surfaces
// upstream data corruption instead of hiding it.
//
// The zero value is false.
type TinyInt bool

// TinyIntFromInt converts a wire integer to a TinyInt. Exactly 0 and 1 are
// accepted.
func TinyIntFromInt(n int64) (TinyInt, error) {
	switch n {
	case 0:
		return TinyInt(false), nil
	case 1:
		return TinyInt(true), nil
	default:
		return TinyInt(false), &InvalidTinyIntError{Value: n}
	}
}

// Bool returns the underlying boolean.
func (t TinyInt) Bool() bool { return bool(t) }

// Int returns the canonical wire integer: 0 for false, 1 for true.
func (t TinyInt) Int() int {
	if t {
		return 1
	}
	return 0
}

// String renders the underlying boolean, not the wire integer.
func (t TinyInt) String() string { return strconv.FormatBool(bool(t)) }

// MarshalJSON encodes t as the JSON integer 0 or 1. Encoding never fails.
func (t TinyInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(t.Int())), nil
}

// UnmarshalJSON decodes the JSON integers 0 and 1 and rejects everything
// else, including other integers, floats, strings and native booleans.
func (t *TinyInt) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("tinyint token %s: %w", string(b), err)
	}
	parsed, err := TinyIntFromInt(n)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// InvalidTinyIntError reports a wire integer that is neither 0 nor 1.
type InvalidTinyIntError struct {
	Value int64
}

func (e *InvalidTinyIntError) Error() string {
	return fmt.Sprintf("invalid value for tinyint: %d", e.Value)
}
