// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import "fmt"

// FieldsCodec serializes a field set with one encoding format.
type FieldsCodec interface {
	EncodeFields(fields *FieldsV0) ([]byte, error)
	DecodeFields(b []byte) (*FieldsV0, error)
}

// NewFieldsCodec returns the codec for [format].
func NewFieldsCodec(format EncodingFormat) (FieldsCodec, error) {
	switch format {
	case EncodingFmtABI:
		return abiCodec{}, nil
	case EncodingFmtCompactShort, EncodingFmtCompactLong:
		return NewCompactCodec(format)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
}
