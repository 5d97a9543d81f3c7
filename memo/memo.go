// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memo implements the binary memo attached to cross-chain transfers.
//
// A memo is a 4 byte header followed by the receiver, payload and revert
// address, serialized with one of three encoding formats:
//
//	ABI:          Ethereum ABI tuple (address, bytes, string)
//	CompactShort: receiver | len(1) payload | len(1) revertAddress
//	CompactLong:  receiver | len(2, LE) payload | len(2, LE) revertAddress
package memo

import (
	"fmt"

	"github.com/ava-labs/memo/utils/wrappers"
)

var _ Codec = codec{}

// Codec encodes and decodes complete memos.
type Codec interface {
	Encode(header *Header, fields *FieldsV0) ([]byte, error)
	Decode(b []byte) (*Header, *FieldsV0, error)
}

// NewCodec returns a Codec backed by EncodeToBytes and DecodeFromBytes.
func NewCodec() Codec {
	return codec{}
}

type codec struct{}

func (codec) Encode(header *Header, fields *FieldsV0) ([]byte, error) {
	return EncodeToBytes(header, fields)
}

func (codec) Decode(b []byte) (*Header, *FieldsV0, error) {
	return DecodeFromBytes(b)
}

// EncodeToBytes returns the header followed by the fields serialized with
// header.EncodingFmt. Nothing is returned on failure.
func EncodeToBytes(header *Header, fields *FieldsV0) ([]byte, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidInput)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidInput)
	}
	if err := header.Verify(); err != nil {
		return nil, err
	}

	fieldsCodec, err := NewFieldsCodec(header.EncodingFmt)
	if err != nil {
		return nil, err
	}
	encodedFields, err := fieldsCodec.EncodeFields(fields)
	if err != nil {
		return nil, err
	}

	size := HeaderLen + len(encodedFields)
	p := wrappers.Packer{
		MaxSize: size,
		Bytes:   make([]byte, 0, size),
	}
	header.pack(&p, fields.Mask())
	p.PackFixedBytes(encodedFields)
	if p.Errored() {
		return nil, p.Err
	}
	return p.Bytes, nil
}

// DecodeFromBytes is the inverse of EncodeToBytes.
func DecodeFromBytes(b []byte) (*Header, *FieldsV0, error) {
	p := wrappers.Packer{Bytes: b}
	header, fieldMask, err := unpackHeader(&p)
	if err != nil {
		return nil, nil, err
	}
	// V0 is the only field set, so the mask must name all of its fields.
	if expected := (*FieldsV0)(nil).Mask(); fieldMask != expected {
		return nil, nil, fmt.Errorf("%w: got 0x%02x, expected 0x%02x", ErrUnsupportedFieldMask, fieldMask, expected)
	}

	fieldsCodec, err := NewFieldsCodec(header.EncodingFmt)
	if err != nil {
		return nil, nil, err
	}
	fields, err := fieldsCodec.DecodeFields(b[p.Offset:])
	if err != nil {
		return nil, nil, err
	}
	return header, fields, nil
}
