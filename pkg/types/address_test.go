package types

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_UndefinedSentinel(t *testing.T) {
	t.Parallel()

	v4, err := ParseAddress[netip.Addr, IPv4Family]("")
	require.NoError(t, err)
	assert.True(t, v4.IsUndefined())
	assert.Equal(t, "", v4.WireString())

	v6, err := ParseAddress[netip.Addr, IPv6Family]("")
	require.NoError(t, err)
	assert.True(t, v6.IsUndefined())

	mac, err := ParseAddress[HardwareAddr, MACFamily]("")
	require.NoError(t, err)
	assert.True(t, mac.IsUndefined())

	// The zero value is undefined too.
	var zero IPv4Address
	assert.True(t, zero.IsUndefined())
}

func TestAddress_UnknownSentinel(t *testing.T) {
	t.Parallel()

	mac, err := ParseAddress[HardwareAddr, MACFamily]("UNKNOWN")
	require.NoError(t, err)
	assert.True(t, mac.IsUnknown())
	assert.Equal(t, "UNKNOWN", mac.WireString())
	assert.Equal(t, "UNKNOWN", mac.String())

	// Accepted for IP families as well, though never observed on the wire
	// there.
	v4, err := ParseAddress[netip.Addr, IPv4Family]("UNKNOWN")
	require.NoError(t, err)
	assert.True(t, v4.IsUnknown())
}

func TestAddress_ParseConcrete(t *testing.T) {
	t.Parallel()

	t.Run("ipv4", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAddress[netip.Addr, IPv4Family]("192.0.2.17")
		require.NoError(t, err)
		v, ok := a.Value()
		require.True(t, ok)
		assert.Equal(t, netip.MustParseAddr("192.0.2.17"), v)
		assert.Equal(t, "192.0.2.17", a.WireString())
	})

	t.Run("ipv6", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAddress[netip.Addr, IPv6Family]("2001:DB8::0001")
		require.NoError(t, err)
		// Canonical colon-hex form, not the original spelling.
		assert.Equal(t, "2001:db8::1", a.WireString())
	})

	t.Run("mac", func(t *testing.T) {
		t.Parallel()
		a, err := ParseAddress[HardwareAddr, MACFamily]("AA-BB-CC-DD-EE-FF")
		require.NoError(t, err)
		assert.Equal(t, "aa:bb:cc:dd:ee:ff", a.WireString())
	})
}

func TestAddress_ParseFailure(t *testing.T) {
	t.Parallel()

	_, err := ParseAddress[netip.Addr, IPv4Family]("not-an-ip")
	require.Error(t, err)

	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "IPv4", invalid.Family)
	assert.Equal(t, "not-an-ip", invalid.Value)

	// An IPv6 literal is not a valid IPv4 field value and vice versa.
	_, err = ParseAddress[netip.Addr, IPv4Family]("2001:db8::1")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "IPv4", invalid.Family)

	_, err = ParseAddress[netip.Addr, IPv6Family]("192.0.2.17")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "IPv6", invalid.Family)

	_, err = ParseAddress[HardwareAddr, MACFamily]("zz:zz:zz:zz:zz:zz")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "MAC", invalid.Family)
	assert.Equal(t, "zz:zz:zz:zz:zz:zz", invalid.Value)
}

func TestAddress_EqualityIsStructural(t *testing.T) {
	t.Parallel()

	// Two spellings of the same MAC address compare equal after decoding.
	dashed, err := ParseAddress[HardwareAddr, MACFamily]("AA-BB-CC-DD-EE-FF")
	require.NoError(t, err)
	colon, err := ParseAddress[HardwareAddr, MACFamily]("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	assert.Equal(t, dashed, colon)

	// Compressed and expanded IPv6 spellings too.
	long, err := ParseAddress[netip.Addr, IPv6Family]("2001:0db8:0000:0000:0000:0000:0000:0001")
	require.NoError(t, err)
	short, err := ParseAddress[netip.Addr, IPv6Family]("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, long, short)

	unknown := UnknownAddress[HardwareAddr, MACFamily]()
	assert.NotEqual(t, dashed, unknown)
	assert.NotEqual(t, UndefinedAddress[HardwareAddr, MACFamily](), unknown)
}

func TestAddress_DisplayDivergesFromWire(t *testing.T) {
	t.Parallel()

	var a IPv4Address
	assert.Equal(t, "unset", a.String())
	assert.Equal(t, "", a.WireString())
}

func TestAddress_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	type payload struct {
		IP  IPv4Address `json:"ip"`
		MAC MACAddress  `json:"mac"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"ip":"192.0.2.17","mac":"UNKNOWN"}`), &p))
	assert.False(t, p.IP.IsUndefined())
	assert.True(t, p.MAC.IsUnknown())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ip":"192.0.2.17","mac":"UNKNOWN"}`, string(out))

	// Undefined round-trips through the empty string.
	require.NoError(t, json.Unmarshal([]byte(`{"ip":"","mac":""}`), &p))
	assert.True(t, p.IP.IsUndefined())
	out, err = json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ip":"","mac":""}`, string(out))

	var bad payload
	err = json.Unmarshal([]byte(`{"ip":"not-an-ip","mac":""}`), &bad)
	var invalid *InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "IPv4", invalid.Family)
}
