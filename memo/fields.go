// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
)

// Field presence bits of the header's field mask.
const (
	FieldReceiver byte = 1 << iota
	FieldPayload
	FieldRevertAddress
)

// FieldsV0 is the version 0 field set. All three fields are always carried,
// even when the payload or revert address is empty.
type FieldsV0 struct {
	// Receiver is the EVM address the transfer is delivered to.
	Receiver common.Address
	// Payload is an application defined message.
	Payload []byte
	// RevertAddress is a foreign-chain address in its native textual form.
	RevertAddress string
}

// NewFieldsV0 parses [receiver] and returns the resulting field set.
func NewFieldsV0(receiver string, payload []byte, revertAddress string) (*FieldsV0, error) {
	addr, err := ParseReceiver(receiver)
	if err != nil {
		return nil, err
	}
	f := &FieldsV0{
		Receiver:      addr,
		Payload:       payload,
		RevertAddress: revertAddress,
	}
	if err := f.Verify(); err != nil {
		return nil, err
	}
	return f, nil
}

// Mask returns one bit per field carried by this field set.
func (*FieldsV0) Mask() byte {
	return FieldReceiver | FieldPayload | FieldRevertAddress
}

func (f *FieldsV0) Verify() error {
	switch {
	case f == nil:
		return fmt.Errorf("%w: missing fields", ErrInvalidInput)
	case !utf8.ValidString(f.RevertAddress):
		return fmt.Errorf("%w: revert address is not valid UTF-8", ErrInvalidInput)
	default:
		return nil
	}
}

// ParseReceiver converts a hex address, with or without the 0x prefix, into
// its 20 raw bytes. Mixed-case input must carry a valid EIP-55 checksum.
func ParseReceiver(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: receiver %q is not a 20 byte hex address", ErrInvalidInput, s)
	}

	addr := common.HexToAddress(s)
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if isMixedCase(digits) && digits != addr.Hex()[2:] {
		return common.Address{}, fmt.Errorf("%w: receiver %q has an invalid checksum", ErrInvalidInput, s)
	}
	return addr, nil
}

func isMixedCase(s string) bool {
	return strings.ToLower(s) != s && strings.ToUpper(s) != s
}
