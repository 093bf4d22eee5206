package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_MarshalUTC(t *testing.T) {
	t.Parallel()

	dt, err := ParseRFC3339("2023-01-02T03:04:05.000Z")
	require.NoError(t, err)

	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-02T03:04:05Z"`, string(out))
}

func TestDateTime_MarshalNormalizesOffset(t *testing.T) {
	t.Parallel()

	dt, err := ParseRFC3339("2023-01-02T03:04:05.000+05:30")
	require.NoError(t, err)

	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2023-01-01T21:34:05Z"`, string(out))
}

func TestDateTime_UnmarshalDispatch(t *testing.T) {
	t.Parallel()

	t.Run("rfc3339 string", func(t *testing.T) {
		t.Parallel()
		var dt DateTime
		require.NoError(t, json.Unmarshal([]byte(`"2023-01-02T03:04:05.000Z"`), &dt))
		require.True(t, dt.IsStamp())

		ts, ok := dt.Time()
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), ts)
	})

	t.Run("epoch integer", func(t *testing.T) {
		t.Parallel()
		var dt DateTime
		require.NoError(t, json.Unmarshal([]byte(`1686489749`), &dt))

		s, err := dt.RFC3339()
		require.NoError(t, err)
		assert.Equal(t, "2023-06-11T13:22:29Z", s)
	})

	t.Run("null sentinel string", func(t *testing.T) {
		t.Parallel()
		var dt DateTime
		require.NoError(t, json.Unmarshal([]byte(`"null"`), &dt))
		assert.True(t, dt.IsNone())
	})

	t.Run("never sentinel string", func(t *testing.T) {
		t.Parallel()
		var dt DateTime
		require.NoError(t, json.Unmarshal([]byte(`"0000-00-00 00:00:00"`), &dt))
		assert.True(t, dt.IsNever())
	})

	t.Run("bare json null", func(t *testing.T) {
		t.Parallel()
		dt := NeverDateTime()
		require.NoError(t, json.Unmarshal([]byte(`null`), &dt))
		assert.True(t, dt.IsNone())
	})
}

func TestDateTime_SentinelIdempotence(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(NoDateTime())
	require.NoError(t, err)
	assert.Equal(t, `"null"`, string(out))

	out, err = json.Marshal(NeverDateTime())
	require.NoError(t, err)
	assert.Equal(t, `"0000-00-00 00:00:00"`, string(out))
}

func TestDateTime_BadString(t *testing.T) {
	t.Parallel()

	var dt DateTime
	err := json.Unmarshal([]byte(`"not-a-date"`), &dt)
	require.Error(t, err)

	var badString *BadDateTimeStringError
	require.ErrorAs(t, err, &badString)
	assert.Equal(t, "not-a-date", badString.Value)

	// Missing offset is malformed too: the portal always sends one.
	_, err = ParseRFC3339("2023-01-02T03:04:05")
	require.ErrorAs(t, err, &badString)
	assert.Equal(t, "2023-01-02T03:04:05", badString.Value)
}

func TestDateTime_BadEpoch(t *testing.T) {
	t.Parallel()

	const farFuture = int64(300_000_000_000) // year 11471

	_, err := FromUnixTimestamp(farFuture)
	require.Error(t, err)

	var badEpoch *BadUnixTimestampError
	require.ErrorAs(t, err, &badEpoch)
	assert.Equal(t, farFuture, badEpoch.Value)

	var dt DateTime
	err = json.Unmarshal([]byte(`300000000000`), &dt)
	require.ErrorAs(t, err, &badEpoch)
}

func TestDateTime_NoRFC3339Equivalent(t *testing.T) {
	t.Parallel()

	_, err := NoDateTime().RFC3339()
	require.ErrorIs(t, err, ErrNoRFC3339Equivalent)

	_, err = NeverDateTime().RFC3339()
	require.ErrorIs(t, err, ErrNoRFC3339Equivalent)
}

func TestDateTime_Compare(t *testing.T) {
	t.Parallel()

	earlier, err := ParseRFC3339("2023-01-02T03:04:05Z")
	require.NoError(t, err)
	later, err := ParseRFC3339("2023-06-11T13:22:29Z")
	require.NoError(t, err)

	cmp, ok := earlier.Compare(later)
	require.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = later.Compare(earlier)
	require.True(t, ok)
	assert.Equal(t, 1, cmp)

	cmp, ok = earlier.Compare(earlier)
	require.True(t, ok)
	assert.Equal(t, 0, cmp)

	// None and Never are incomparable against everything, themselves
	// included.
	for _, a := range []DateTime{NoDateTime(), NeverDateTime()} {
		for _, b := range []DateTime{NoDateTime(), NeverDateTime(), earlier} {
			_, ok := a.Compare(b)
			assert.False(t, ok)
			_, ok = b.Compare(a)
			assert.False(t, ok)
		}
	}
}

func TestDateTime_Equal(t *testing.T) {
	t.Parallel()

	a, err := ParseRFC3339("2023-01-02T03:04:05+05:30")
	require.NoError(t, err)
	b, err := ParseRFC3339("2023-01-01T21:34:05Z")
	require.NoError(t, err)

	// Same instant, different original offsets.
	assert.True(t, a.Equal(b))

	assert.True(t, NoDateTime().Equal(NoDateTime()))
	assert.True(t, NeverDateTime().Equal(NeverDateTime()))
	assert.False(t, NoDateTime().Equal(NeverDateTime()))
	assert.False(t, a.Equal(NoDateTime()))
}

func TestDateTime_DisplayDivergesFromWire(t *testing.T) {
	t.Parallel()

	never := NeverDateTime()
	assert.Equal(t, "never", never.String())

	wire, err := json.Marshal(never)
	require.NoError(t, err)
	assert.Equal(t, `"0000-00-00 00:00:00"`, string(wire))

	assert.Equal(t, "null", NoDateTime().String())
}

func TestInterval_EndOmittedWhenAbsent(t *testing.T) {
	t.Parallel()

	start, err := ParseRFC3339("2023-01-02T03:04:05+05:30")
	require.NoError(t, err)

	out, err := json.Marshal(Interval{Start: start})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2023-01-01T21:34:05Z"}`, string(out))

	end := NeverDateTime()
	out, err = json.Marshal(Interval{Start: start, End: &end})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2023-01-01T21:34:05Z","end":"0000-00-00 00:00:00"}`, string(out))

	var roundTrip Interval
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	require.NotNil(t, roundTrip.End)
	assert.True(t, roundTrip.End.IsNever())
	assert.True(t, roundTrip.Start.Equal(start))
}
