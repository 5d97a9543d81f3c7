// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// abiWordLen is the size of every ABI head slot and padded tail section.
const abiWordLen = 32

var (
	_ FieldsCodec = abiCodec{}

	// fieldsV0Arguments is the (address, bytes, string) tuple.
	fieldsV0Arguments = abi.Arguments{
		{Name: "receiver", Type: mustNewType("address")},
		{Name: "payload", Type: mustNewType("bytes")},
		{Name: "revertAddress", Type: mustNewType("string")},
	}
)

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// NewABICodec returns the codec that encodes fields as a standard Ethereum
// ABI tuple. Field lengths are not bounded.
func NewABICodec() FieldsCodec {
	return abiCodec{}
}

type abiCodec struct{}

func (abiCodec) EncodeFields(f *FieldsV0) ([]byte, error) {
	if err := f.Verify(); err != nil {
		return nil, err
	}
	payload := f.Payload
	if payload == nil {
		payload = []byte{}
	}
	b, err := fieldsV0Arguments.Pack(f.Receiver, payload, f.RevertAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't pack ABI fields: %v", ErrInvalidInput, err)
	}
	return b, nil
}

// DecodeFields only accepts the exact bytes EncodeFields would produce for
// the decoded values.
func (c abiCodec) DecodeFields(b []byte) (*FieldsV0, error) {
	if len(b)%abiWordLen != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d byte ABI word", ErrMalformedFields, len(b), abiWordLen)
	}
	values, err := fieldsV0Arguments.Unpack(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFields, err)
	}
	if len(values) != len(fieldsV0Arguments) {
		return nil, fmt.Errorf("%w: unpacked %d values, expected %d", ErrMalformedFields, len(values), len(fieldsV0Arguments))
	}

	receiver, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected receiver type %T", ErrMalformedFields, values[0])
	}
	payload, ok := values[1].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected payload type %T", ErrMalformedFields, values[1])
	}
	revertAddress, ok := values[2].(string)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected revert address type %T", ErrMalformedFields, values[2])
	}

	f := &FieldsV0{
		Receiver:      receiver,
		Payload:       common.CopyBytes(payload),
		RevertAddress: revertAddress,
	}
	if err := f.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFields, err)
	}

	reencoded, err := c.EncodeFields(f)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(reencoded, b) {
		return nil, ErrNonCanonical
	}
	return f, nil
}
