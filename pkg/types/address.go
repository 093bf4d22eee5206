package types

import (
	"encoding/json"
	"fmt"
	"net"
	"net/netip"
)

const (
	// addressUnknownWire is the sentinel the portal sends when it cannot
	// determine an address. Observed only on MAC address fields, but accepted
	// for every family.
	addressUnknownWire = "UNKNOWN"
	// addressUnsetDisplay is the human-readable form of an undefined
	// address. It is not a legal wire token.
	addressUnsetDisplay = "unset"
)

// Family is the capability an address family plugs into Address: a name for
// error reporting plus the parse and format primitives. The generic wrapper
// never inspects address bytes itself; the family is the single source of
// truth for what strings are parseable. Adding a new family means
// implementing these three methods on a zero-size struct.
type Family[T comparable] interface {
	Name() string
	Parse(s string) (T, error)
	Format(v T) string
}

type addressKind uint8

const (
	addressUndefined addressKind = iota
	addressUnknown
	addressSome
)

// Address is a portal network-address field, generic over an address family.
// It is one of three variants: undefined (wire: empty string), unknown
// (wire: "UNKNOWN"), or a concrete parsed address.
//
// The zero value is the undefined variant. Address values are comparable
// with ==; equality is over the variant and the parsed value, never over the
// original wire spelling, so two textual spellings of the same address
// compare equal.
type Address[T comparable, F Family[T]] struct {
	value T
	kind  addressKind
}

// UndefinedAddress returns the undefined variant.
func UndefinedAddress[T comparable, F Family[T]]() Address[T, F] {
	return Address[T, F]{kind: addressUndefined}
}

// UnknownAddress returns the "UNKNOWN" sentinel variant.
func UnknownAddress[T comparable, F Family[T]]() Address[T, F] {
	return Address[T, F]{kind: addressUnknown}
}

// SomeAddress returns the concrete variant holding v.
func SomeAddress[T comparable, F Family[T]](v T) Address[T, F] {
	return Address[T, F]{kind: addressSome, value: v}
}

// ParseAddress decodes a wire token under family F. The empty string decodes
// as undefined and "UNKNOWN" as unknown; anything else is handed to the
// family parser. Parse failures carry the family name and the offending
// token.
func ParseAddress[T comparable, F Family[T]](s string) (Address[T, F], error) {
	var f F
	switch s {
	case "":
		return Address[T, F]{kind: addressUndefined}, nil
	case addressUnknownWire:
		return Address[T, F]{kind: addressUnknown}, nil
	}
	v, err := f.Parse(s)
	if err != nil {
		return Address[T, F]{}, &InvalidAddressError{Family: f.Name(), Value: s}
	}
	return Address[T, F]{kind: addressSome, value: v}, nil
}

// IsUndefined reports whether a is the undefined variant.
func (a Address[T, F]) IsUndefined() bool { return a.kind == addressUndefined }

// IsUnknown reports whether a is the "UNKNOWN" sentinel variant.
func (a Address[T, F]) IsUnknown() bool { return a.kind == addressUnknown }

// Value returns the parsed address. The second return is false for the
// undefined and unknown variants.
func (a Address[T, F]) Value() (T, bool) {
	if a.kind != addressSome {
		var zero T
		return zero, false
	}
	return a.value, true
}

// WireString renders the canonical wire form: "" for undefined, "UNKNOWN"
// for unknown, the family's canonical string otherwise. It never fails.
func (a Address[T, F]) WireString() string {
	var f F
	switch a.kind {
	case addressUndefined:
		return ""
	case addressUnknown:
		return addressUnknownWire
	default:
		return f.Format(a.value)
	}
}

// String renders a for logs and CLI output. It matches the wire form except
// that the undefined variant renders as "unset" rather than the empty
// string. Never feed String output back onto the wire.
func (a Address[T, F]) String() string {
	if a.kind == addressUndefined {
		return addressUnsetDisplay
	}
	return a.WireString()
}

// MarshalJSON encodes a as its canonical wire string.
func (a Address[T, F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.WireString())
}

// UnmarshalJSON decodes a JSON string wire token. A bare JSON null leaves
// the value undefined.
func (a *Address[T, F]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = Address[T, F]{kind: addressUndefined}
		return nil
	}
	var f F
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &InvalidAddressError{Family: f.Name(), Value: string(b)}
	}
	parsed, err := ParseAddress[T, F](s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// IPv4Family parses and formats dotted-quad IPv4 literals.
type IPv4Family struct{}

// Name implements Family.
func (IPv4Family) Name() string { return "IPv4" }

// Parse implements Family. 4-in-6 spellings such as "::ffff:1.2.3.4" are
// rejected: the portal only ever sends dotted quads on IPv4 fields.
func (IPv4Family) Parse(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("not an IPv4 address: %q", s)
	}
	return addr, nil
}

// Format implements Family.
func (IPv4Family) Format(v netip.Addr) string { return v.String() }

// IPv6Family parses and formats colon-hex IPv6 literals.
type IPv6Family struct{}

// Name implements Family.
func (IPv6Family) Name() string { return "IPv6" }

// Parse implements Family.
func (IPv6Family) Parse(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	if !addr.Is6() || addr.Is4In6() {
		return netip.Addr{}, fmt.Errorf("not an IPv6 address: %q", s)
	}
	return addr, nil
}

// Format implements Family.
func (IPv6Family) Format(v netip.Addr) string { return v.String() }

// HardwareAddr is the parsed form of a MAC address: the lower-case
// colon-separated canonical spelling produced by net.HardwareAddr. Storing
// the canonical string keeps the type comparable, so dash- and dot-separated
// wire spellings of the same address compare equal after decoding.
type HardwareAddr string

// MACFamily parses and formats IEEE 802 hardware addresses.
type MACFamily struct{}

// Name implements Family.
func (MACFamily) Name() string { return "MAC" }

// Parse implements Family. All spellings accepted by net.ParseMAC are
// recognized and canonicalized.
func (MACFamily) Parse(s string) (HardwareAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return "", err
	}
	return HardwareAddr(hw.String()), nil
}

// Format implements Family.
func (MACFamily) Format(v HardwareAddr) string { return string(v) }

// IPv4Address is a portal IPv4 address field.
type IPv4Address = Address[netip.Addr, IPv4Family]

// IPv6Address is a portal IPv6 address field.
type IPv6Address = Address[netip.Addr, IPv6Family]

// MACAddress is a portal hardware (MAC) address field. This is the only
// family for which the portal is known to send "UNKNOWN".
type MACAddress = Address[HardwareAddr, MACFamily]

// InvalidAddressError reports a wire token that is not a recognized sentinel
// and does not parse under the named family.
type InvalidAddressError struct {
	Family string
	Value  string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid value for %s address: %q", e.Family, e.Value)
}
