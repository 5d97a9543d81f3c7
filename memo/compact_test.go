// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCompactCodec(t *testing.T) {
	require := require.New(t)

	for _, format := range []EncodingFormat{EncodingFmtCompactShort, EncodingFmtCompactLong} {
		c, err := NewCompactCodec(format)
		require.NoError(err)
		require.NotNil(c)
	}

	_, err := NewCompactCodec(EncodingFmtABI)
	require.ErrorIs(err, ErrUnsupportedFormat)
}

func TestCompactCodecUnsupportedFormat(t *testing.T) {
	require := require.New(t)

	c := &compactCodec{format: EncodingFmtABI}
	fields := newTestFields(t)

	_, err := c.EncodeFields(fields)
	require.ErrorIs(err, ErrUnsupportedFormat)

	encoded, err := hex.DecodeString(testCompactShortMemoHex[2*HeaderLen:])
	require.NoError(err)
	_, err = c.DecodeFields(encoded)
	require.ErrorIs(err, ErrUnsupportedFormat)
}

func TestCompactCodecEncodeFields(t *testing.T) {
	tests := []struct {
		format      EncodingFormat
		expectedHex string
	}{
		{
			format:      EncodingFmtCompactShort,
			expectedHex: testCompactShortMemoHex[2*HeaderLen:],
		},
		{
			format:      EncodingFmtCompactLong,
			expectedHex: testCompactLongMemoHex[2*HeaderLen:],
		},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			require := require.New(t)

			c, err := NewCompactCodec(test.format)
			require.NoError(err)

			encoded, err := c.EncodeFields(newTestFields(t))
			require.NoError(err)
			require.Equal(test.expectedHex, hex.EncodeToString(encoded))
		})
	}
}

func TestCompactCodecEmptyFields(t *testing.T) {
	require := require.New(t)

	c, err := NewCompactCodec(EncodingFmtCompactLong)
	require.NoError(err)

	fields := &FieldsV0{Receiver: newTestFields(t).Receiver}
	encoded, err := c.EncodeFields(fields)
	require.NoError(err)
	require.Len(encoded, 20+2+2)
	require.Equal([]byte{0, 0, 0, 0}, encoded[20:])

	decoded, err := c.DecodeFields(encoded)
	require.NoError(err)
	require.NotNil(decoded.Payload)
	require.Empty(decoded.Payload)
	requireFieldsEqual(t, fields, decoded)
}

func TestCompactCodecLengthLimits(t *testing.T) {
	receiver := newTestFields(t).Receiver
	tests := []struct {
		name          string
		format        EncodingFormat
		payloadLen    int
		revertAddress string
		expectedErr   error
		expectedField string
	}{
		{
			name:          "short max payload",
			format:        EncodingFmtCompactShort,
			payloadLen:    MaxCompactShortDataLen,
			revertAddress: strings.Repeat("b", MaxCompactShortDataLen),
		},
		{
			name:          "short payload too long",
			format:        EncodingFmtCompactShort,
			payloadLen:    MaxCompactShortDataLen + 1,
			expectedErr:   ErrLengthExceeded,
			expectedField: payloadFieldName,
		},
		{
			name:          "short revert address too long",
			format:        EncodingFmtCompactShort,
			revertAddress: strings.Repeat("b", MaxCompactShortDataLen+1),
			expectedErr:   ErrLengthExceeded,
			expectedField: revertAddressFieldName,
		},
		{
			name:          "short max multibyte revert address",
			format:        EncodingFmtCompactShort,
			revertAddress: strings.Repeat("€", MaxCompactShortDataLen/3),
		},
		{
			name:          "short multibyte revert address counts bytes",
			format:        EncodingFmtCompactShort,
			revertAddress: strings.Repeat("€", 128),
			expectedErr:   ErrLengthExceeded,
			expectedField: revertAddressFieldName,
		},
		{
			name:          "long accepts what short rejects",
			format:        EncodingFmtCompactLong,
			payloadLen:    MaxCompactShortDataLen + 1,
			revertAddress: strings.Repeat("b", MaxCompactShortDataLen+1),
		},
		{
			name:       "long max payload",
			format:     EncodingFmtCompactLong,
			payloadLen: MaxCompactLongDataLen,
		},
		{
			name:          "long payload too long",
			format:        EncodingFmtCompactLong,
			payloadLen:    MaxCompactLongDataLen + 1,
			expectedErr:   ErrLengthExceeded,
			expectedField: payloadFieldName,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			c, err := NewCompactCodec(test.format)
			require.NoError(err)

			fields := &FieldsV0{
				Receiver:      receiver,
				Payload:       make([]byte, test.payloadLen),
				RevertAddress: test.revertAddress,
			}
			encoded, err := c.EncodeFields(fields)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				require.Nil(encoded)
				require.Contains(err.Error(), test.expectedField)
				require.Contains(err.Error(), test.format.String())
				size := len(fields.Payload)
				if test.expectedField == revertAddressFieldName {
					size = len(fields.RevertAddress)
				}
				require.Contains(err.Error(), fmt.Sprintf("%s is %d bytes", test.expectedField, size))
				return
			}

			decoded, err := c.DecodeFields(encoded)
			require.NoError(err)
			requireFieldsEqual(t, fields, decoded)
		})
	}
}

func TestCompactCodecDecodeFieldsErrors(t *testing.T) {
	valid, err := hex.DecodeString(testCompactShortMemoHex[2*HeaderLen:])
	require.NoError(t, err)

	tests := []struct {
		name        string
		encoded     []byte
		expectedErr error
	}{
		{
			name:        "short receiver",
			encoded:     valid[:19],
			expectedErr: ErrMalformedFields,
		},
		{
			name:        "missing payload length",
			encoded:     valid[:20],
			expectedErr: ErrMalformedFields,
		},
		{
			name:        "payload length past the end",
			encoded:     append(append([]byte(nil), valid[:20]...), 0x05, 0x01),
			expectedErr: ErrMalformedFields,
		},
		{
			name:        "missing revert address",
			encoded:     valid[:30],
			expectedErr: ErrMalformedFields,
		},
		{
			name:        "trailing bytes",
			encoded:     append(append([]byte(nil), valid...), 0x00),
			expectedErr: ErrTrailingBytes,
		},
		{
			name: "invalid utf-8 revert address",
			encoded: append(
				append([]byte(nil), valid[:20]...),
				0x00, 0x02, 0xff, 0xfe,
			),
			expectedErr: ErrMalformedFields,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := NewCompactCodec(EncodingFmtCompactShort)
			require.NoError(t, err)

			_, err = c.DecodeFields(test.encoded)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestCompactCodecDecodeDoesNotAlias(t *testing.T) {
	require := require.New(t)

	encoded, err := hex.DecodeString(testCompactLongMemoHex[2*HeaderLen:])
	require.NoError(err)
	original := append([]byte(nil), encoded...)

	c, err := NewCompactCodec(EncodingFmtCompactLong)
	require.NoError(err)
	fields, err := c.DecodeFields(encoded)
	require.NoError(err)

	fields.Payload[0] = 'x'
	require.Equal(original, encoded)
}
