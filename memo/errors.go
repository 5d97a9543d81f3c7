// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import "errors"

var (
	// ErrInvalidInput is returned when the header or fields handed to the
	// encoder are missing or malformed.
	ErrInvalidInput = errors.New("invalid memo input")
	// ErrUnsupportedFormat is returned for encoding formats outside of
	// ABI, CompactShort and CompactLong.
	ErrUnsupportedFormat = errors.New("unsupported encoding format")
	// ErrLengthExceeded is returned when a length-prefixed field does not fit
	// in the length prefix of the selected compact format.
	ErrLengthExceeded = errors.New("data length exceeded")

	ErrInvalidIdentifier    = errors.New("invalid memo identifier")
	ErrUnsupportedVersion   = errors.New("unsupported memo version")
	ErrUnsupportedFieldMask = errors.New("unsupported field mask")
	ErrInvalidReservedBits  = errors.New("reserved bits must be zero")
	ErrMalformedFields      = errors.New("malformed memo fields")
	ErrTrailingBytes        = errors.New("trailing bytes after memo fields")
	ErrNonCanonical         = errors.New("non-canonical ABI encoding")
)
