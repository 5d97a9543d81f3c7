// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ava-labs/memo/utils/wrappers"
)

const (
	// Identifier is the first byte of every memo.
	Identifier byte = 0x5A

	// Version0 is the only defined memo version.
	Version0 byte = 0x0

	// HeaderLen is the number of bytes in a memo header.
	HeaderLen = 4

	nibbleMask = 0x0F
)

// EncodingFormat selects how the memo fields are serialized. It occupies the
// low nibble of the second header byte.
type EncodingFormat byte

const (
	EncodingFmtABI          EncodingFormat = 0b0000
	EncodingFmtCompactShort EncodingFormat = 0b0001
	EncodingFmtCompactLong  EncodingFormat = 0b0010
)

const (
	abiStr          = "abi"
	compactShortStr = "compact-short"
	compactLongStr  = "compact-long"
	unknownStr      = "unknown"
)

// ToEncodingFormat is the inverse of EncodingFormat.String()
func ToEncodingFormat(s string) (EncodingFormat, error) {
	switch strings.ToLower(s) {
	case abiStr:
		return EncodingFmtABI, nil
	case compactShortStr:
		return EncodingFmtCompactShort, nil
	case compactLongStr:
		return EncodingFmtCompactLong, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func (f EncodingFormat) Valid() bool {
	switch f {
	case EncodingFmtABI, EncodingFmtCompactShort, EncodingFmtCompactLong:
		return true
	default:
		return false
	}
}

func (f EncodingFormat) String() string {
	switch f {
	case EncodingFmtABI:
		return abiStr
	case EncodingFmtCompactShort:
		return compactShortStr
	case EncodingFmtCompactLong:
		return compactLongStr
	default:
		return unknownStr
	}
}

func (f EncodingFormat) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
	return json.Marshal(f.String())
}

func (f *EncodingFormat) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*f, err = ToEncodingFormat(str)
	return err
}

// OpCode classifies the cross-chain action the memo requests. The codec
// carries it but never acts on it. It occupies the high nibble of the third
// header byte.
type OpCode byte

const (
	OpDeposit        OpCode = 0b0000
	OpDepositAndCall OpCode = 0b0001
	OpCall           OpCode = 0b0010
	OpInvalid        OpCode = 0b0011
)

const (
	depositStr        = "deposit"
	depositAndCallStr = "deposit-and-call"
	callStr           = "call"
	invalidStr        = "invalid"
)

// ToOpCode is the inverse of OpCode.String()
func ToOpCode(s string) (OpCode, error) {
	switch strings.ToLower(s) {
	case depositStr:
		return OpDeposit, nil
	case depositAndCallStr:
		return OpDepositAndCall, nil
	case callStr:
		return OpCall, nil
	case invalidStr:
		return OpInvalid, nil
	default:
		return 0, fmt.Errorf("%w: unknown op code %q", ErrInvalidInput, s)
	}
}

func (o OpCode) Valid() bool {
	return o <= OpInvalid
}

func (o OpCode) String() string {
	switch o {
	case OpDeposit:
		return depositStr
	case OpDepositAndCall:
		return depositAndCallStr
	case OpCall:
		return callStr
	case OpInvalid:
		return invalidStr
	default:
		return unknownStr
	}
}

func (o OpCode) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: op code %d", ErrInvalidInput, o)
	}
	return json.Marshal(o.String())
}

func (o *OpCode) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*o, err = ToOpCode(str)
	return err
}

// Header is the fixed 4 byte prefix of a memo:
//
//	[Identifier] [Version<<4 | EncodingFmt] [OpCode<<4 | 0] [field mask]
type Header struct {
	EncodingFmt EncodingFormat `json:"encodingFormat"`
	OpCode      OpCode         `json:"opCode"`
}

// Verify rejects values that do not fit their nibble rather than masking
// them.
func (h *Header) Verify() error {
	switch {
	case h == nil:
		return fmt.Errorf("%w: missing header", ErrInvalidInput)
	case !h.EncodingFmt.Valid():
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, h.EncodingFmt)
	case !h.OpCode.Valid():
		return fmt.Errorf("%w: op code %d", ErrInvalidInput, h.OpCode)
	default:
		return nil
	}
}

// pack writes the header with the given field mask. Assumes [h] was verified.
func (h *Header) pack(p *wrappers.Packer, fieldMask byte) {
	p.PackByte(Identifier)
	p.PackByte(Version0<<4 | byte(h.EncodingFmt)&nibbleMask)
	p.PackByte((byte(h.OpCode) & nibbleMask) << 4)
	p.PackByte(fieldMask)
}

// unpackHeader reads a header and returns it along with the field mask that
// followed it.
func unpackHeader(p *wrappers.Packer) (*Header, byte, error) {
	identifier := p.UnpackByte()
	versionFmt := p.UnpackByte()
	opReserved := p.UnpackByte()
	fieldMask := p.UnpackByte()
	if p.Errored() {
		return nil, 0, fmt.Errorf("%w: header needs %d bytes: %v", ErrMalformedFields, HeaderLen, p.Err)
	}

	if identifier != Identifier {
		return nil, 0, fmt.Errorf("%w: got 0x%02x, expected 0x%02x", ErrInvalidIdentifier, identifier, Identifier)
	}
	if version := versionFmt >> 4; version != Version0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if reserved := opReserved & nibbleMask; reserved != 0 {
		return nil, 0, fmt.Errorf("%w: got 0x%x", ErrInvalidReservedBits, reserved)
	}

	h := &Header{
		EncodingFmt: EncodingFormat(versionFmt & nibbleMask),
		OpCode:      OpCode(opReserved >> 4),
	}
	return h, fieldMask, h.Verify()
}
