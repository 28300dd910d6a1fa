package huffman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainer_MarshalBinary(t *testing.T) {
	ft, err := NewFrequencyTable([]FrequencyEntry{{'A', 3}, {'B', 0x01020304}})
	require.NoError(t, err)

	c := Container{Frequencies: ft, Payload: []byte{0xff, 0x00}, ResidualBits: 5, Final: 0xf8}
	raw, err := c.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x02,
		'A', 0x00, 0x00, 0x00, 0x03,
		'B', 0x01, 0x02, 0x03, 0x04,
		0xff, 0x00,
		0x05, 0xf8,
	}, raw)
	require.Equal(t, len(raw), c.Size())

	parsed, err := ParseContainer(raw)
	require.NoError(t, err)
	require.Equal(t, ft.Entries(), parsed.Frequencies.Entries())
	require.Equal(t, c.Payload, parsed.Payload)
	require.Equal(t, c.ResidualBits, parsed.ResidualBits)
	require.Equal(t, c.Final, parsed.Final)
}

func TestContainer_MarshalBinary_Invalid(t *testing.T) {
	_, err := Container{}.MarshalBinary()
	require.True(t, errors.Is(err, ErrMalformedHeader), "got %v", err)

	ft, err := NewFrequencyTable([]FrequencyEntry{{'A', 1}})
	require.NoError(t, err)
	_, err = Container{Frequencies: ft, ResidualBits: 9}.MarshalBinary()
	require.True(t, errors.Is(err, ErrInvalidResidualLength), "got %v", err)
}

func TestParseContainer_Invalid(t *testing.T) {
	type testRow struct {
		name   string
		data   []byte
		expect error
	}

	testData := [...]testRow{
		{"empty", nil, ErrMalformedHeader},
		{"short-count", []byte{0x00, 0x00, 0x01}, ErrMalformedHeader},
		{"zero-count", []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, ErrMalformedHeader},
		{"huge-count", []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00}, ErrMalformedHeader},
		{"short-entries", []byte{0x00, 0x00, 0x00, 0x02, 'A', 0x00, 0x00, 0x00, 0x01, 0x00, 0x00}, ErrMalformedHeader},
		{"no-trailer", []byte{0x00, 0x00, 0x00, 0x01, 'A', 0x00, 0x00, 0x00, 0x01, 0x01}, ErrMalformedHeader},
		{"duplicate", []byte{
			0x00, 0x00, 0x00, 0x02,
			'A', 0x00, 0x00, 0x00, 0x01,
			'A', 0x00, 0x00, 0x00, 0x01,
			0x02, 0x40,
		}, ErrMalformedHeader},
		{"zero-frequency", []byte{
			0x00, 0x00, 0x00, 0x01,
			'A', 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00,
		}, ErrMalformedHeader},
		{"residual-9", []byte{
			0x00, 0x00, 0x00, 0x01,
			'A', 0x00, 0x00, 0x00, 0x01,
			0x09, 0x00,
		}, ErrInvalidResidualLength},
		{"residual-255", []byte{
			0x00, 0x00, 0x00, 0x01,
			'A', 0x00, 0x00, 0x00, 0x01,
			0xff, 0x00,
		}, ErrInvalidResidualLength},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := ParseContainer(row.data)
			require.Error(t, err)
			require.True(t, errors.Is(err, row.expect), "expected %v, got %v", row.expect, err)
		})
	}
}

func TestParseContainer_ResidualEight(t *testing.T) {
	raw := []byte{
		0x00, 0x00, 0x00, 0x01,
		'A', 0x00, 0x00, 0x00, 0x08,
		0x08, 0x00,
	}
	c, err := ParseContainer(raw)
	require.NoError(t, err)
	require.Empty(t, c.Payload)
	require.Equal(t, byte(8), c.ResidualBits)

	out, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAAAAAA"), out)
}
