// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/memo/utils/wrappers"
)

const (
	// MaxCompactShortDataLen is the longest field a 1 byte prefix describes.
	MaxCompactShortDataLen = math.MaxUint8
	// MaxCompactLongDataLen is the longest field a 2 byte prefix describes.
	MaxCompactLongDataLen = math.MaxUint16

	payloadFieldName       = "payload"
	revertAddressFieldName = "revert address"
)

var _ FieldsCodec = (*compactCodec)(nil)

// compactCodec concatenates the raw receiver with the payload and the revert
// address, each behind its own length prefix. Nothing is padded.
type compactCodec struct {
	format EncodingFormat
}

// NewCompactCodec returns the codec for [format], which must be
// EncodingFmtCompactShort or EncodingFmtCompactLong.
func NewCompactCodec(format EncodingFormat) (FieldsCodec, error) {
	c := &compactCodec{format: format}
	if _, err := c.prefixLen(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *compactCodec) prefixLen() (int, error) {
	switch c.format {
	case EncodingFmtCompactShort:
		return wrappers.ByteLen, nil
	case EncodingFmtCompactLong:
		return wrappers.ShortLen, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a compact format", ErrUnsupportedFormat, c.format)
	}
}

func (c *compactCodec) maxDataLen() int {
	if c.format == EncodingFmtCompactShort {
		return MaxCompactShortDataLen
	}
	return MaxCompactLongDataLen
}

func (c *compactCodec) EncodeFields(f *FieldsV0) ([]byte, error) {
	if err := f.Verify(); err != nil {
		return nil, err
	}
	prefixLen, err := c.prefixLen()
	if err != nil {
		return nil, err
	}

	revertAddress := []byte(f.RevertAddress)
	size := common.AddressLength + 2*prefixLen + len(f.Payload) + len(revertAddress)
	p := wrappers.Packer{
		MaxSize: size,
		Bytes:   make([]byte, 0, size),
	}
	p.PackFixedBytes(f.Receiver[:])
	if err := c.packData(&p, payloadFieldName, f.Payload); err != nil {
		return nil, err
	}
	if err := c.packData(&p, revertAddressFieldName, revertAddress); err != nil {
		return nil, err
	}
	return p.Bytes, p.Err
}

// packData writes the length prefix of [data] followed by [data].
func (c *compactCodec) packData(p *wrappers.Packer, field string, data []byte) error {
	if maxLen := c.maxDataLen(); len(data) > maxLen {
		return fmt.Errorf("%w: %s is %d bytes, %s allows at most %d",
			ErrLengthExceeded, field, len(data), c.format, maxLen)
	}

	switch c.format {
	case EncodingFmtCompactShort:
		p.PackByte(byte(len(data)))
	case EncodingFmtCompactLong:
		p.PackShortLE(uint16(len(data)))
	default:
		return fmt.Errorf("%w: %s is not a compact format", ErrUnsupportedFormat, c.format)
	}
	p.PackFixedBytes(data)
	return p.Err
}

func (c *compactCodec) DecodeFields(b []byte) (*FieldsV0, error) {
	p := wrappers.Packer{Bytes: b}
	receiver := p.UnpackFixedBytes(common.AddressLength)
	if p.Errored() {
		return nil, fmt.Errorf("%w: couldn't read receiver: %v", ErrMalformedFields, p.Err)
	}
	payload, err := c.unpackData(&p, payloadFieldName)
	if err != nil {
		return nil, err
	}
	revertAddress, err := c.unpackData(&p, revertAddressFieldName)
	if err != nil {
		return nil, err
	}
	if remaining := p.Remaining(); remaining != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, remaining)
	}

	f := &FieldsV0{
		Receiver:      common.BytesToAddress(receiver),
		Payload:       payload,
		RevertAddress: string(revertAddress),
	}
	if err := f.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFields, err)
	}
	return f, nil
}

func (c *compactCodec) unpackData(p *wrappers.Packer, field string) ([]byte, error) {
	var size int
	switch c.format {
	case EncodingFmtCompactShort:
		size = int(p.UnpackByte())
	case EncodingFmtCompactLong:
		size = int(p.UnpackShortLE())
	default:
		return nil, fmt.Errorf("%w: %s is not a compact format", ErrUnsupportedFormat, c.format)
	}
	data := p.UnpackFixedBytes(size)
	if p.Errored() {
		return nil, fmt.Errorf("%w: couldn't read %s: %v", ErrMalformedFields, field, p.Err)
	}
	return data, nil
}
