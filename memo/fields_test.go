// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestParseReceiver(t *testing.T) {
	expected := common.Address{
		0xea, 0x98, 0x08, 0xf0, 0xac, 0x50, 0x4d, 0x1f, 0x52, 0x1b,
		0x5b, 0xbd, 0xfc, 0x33, 0xe6, 0xf1, 0x95, 0x37, 0x57, 0xa7,
	}
	tests := []struct {
		name        string
		receiver    string
		expectedErr error
	}{
		{
			name:     "checksummed",
			receiver: "0xEA9808f0Ac504d1F521B5BbdfC33e6f1953757a7",
		},
		{
			name:     "lowercase",
			receiver: "0xea9808f0ac504d1f521b5bbdfc33e6f1953757a7",
		},
		{
			name:     "uppercase",
			receiver: "0xEA9808F0AC504D1F521B5BBDFC33E6F1953757A7",
		},
		{
			name:     "no prefix",
			receiver: "ea9808f0ac504d1f521b5bbdfc33e6f1953757a7",
		},
		{
			name:        "bad checksum",
			receiver:    "0xeA9808f0Ac504d1F521B5BbdfC33e6f1953757a7",
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "too short",
			receiver:    "0xEA9808f0Ac504d1F521B5BbdfC33e6f1953757",
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "not hex",
			receiver:    "0xinvalidaddress",
			expectedErr: ErrInvalidInput,
		},
		{
			name:        "empty",
			receiver:    "",
			expectedErr: ErrInvalidInput,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			addr, err := ParseReceiver(test.receiver)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(expected, addr)
			}
		})
	}
}

func TestNewFieldsV0(t *testing.T) {
	require := require.New(t)

	fields, err := NewFieldsV0(testReceiver, []byte("a payload"), testRevertAddress)
	require.NoError(err)
	require.Equal(common.HexToAddress(testReceiver), fields.Receiver)
	require.Equal([]byte("a payload"), fields.Payload)
	require.Equal(testRevertAddress, fields.RevertAddress)
	require.Equal(byte(0b00000111), fields.Mask())

	fields, err = NewFieldsV0("0x1234", nil, "")
	require.ErrorIs(err, ErrInvalidInput)
	require.Nil(fields)

	fields, err = NewFieldsV0(testReceiver, nil, string([]byte{0xc3, 0x28}))
	require.ErrorIs(err, ErrInvalidInput)
	require.Nil(fields)
}

func TestFieldsV0VerifyNil(t *testing.T) {
	var fields *FieldsV0
	require.ErrorIs(t, fields.Verify(), ErrInvalidInput)
}
