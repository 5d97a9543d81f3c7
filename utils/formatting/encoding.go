// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58/base58"

	"github.com/ava-labs/memo/utils/hashing"
)

const (
	hexPrefix   = "0x"
	checksumLen = 4
	maxCB58Size = 1 << 18 // covers the largest CompactLong memo
	hexStr      = "hex"
	hexNCStr    = "hexnc"
	cb58Str     = "cb58"
	invalidStr  = "invalid"
)

var (
	errInvalidEncoding  = errors.New("invalid encoding")
	errMissingChecksum  = errors.New("input string is smaller than the checksum size")
	errBadChecksum      = errors.New("invalid input checksum")
	errMissingHexPrefix = errors.New("missing 0x prefix to hex encoding")
)

// Encoding defines how bytes are converted to a string and vice versa
type Encoding uint8

const (
	// Hex specifies a hex plus 4 byte checksum encoding format
	Hex Encoding = iota
	// HexNC specifies a hex encoding format
	HexNC
	// CB58 specifies the CB58 encoding format
	CB58
)

// ToEncoding is the inverse of Encoding.String()
func ToEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case hexStr:
		return Hex, nil
	case hexNCStr:
		return HexNC, nil
	case cb58Str:
		return CB58, nil
	default:
		return 0, fmt.Errorf("%w: %q", errInvalidEncoding, s)
	}
}

func (enc Encoding) String() string {
	switch enc {
	case Hex:
		return hexStr
	case HexNC:
		return hexNCStr
	case CB58:
		return cb58Str
	default:
		return invalidStr
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Hex, HexNC, CB58:
		return true
	}
	return false
}

func (enc Encoding) MarshalJSON() ([]byte, error) {
	if !enc.valid() {
		return nil, errInvalidEncoding
	}
	return []byte(`"` + enc.String() + `"`), nil
}

func (enc *Encoding) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == "null" {
		return nil
	}
	var err error
	*enc, err = ToEncoding(strings.Trim(str, `"`))
	return err
}

// Encode [bytes] to a string using the given encoding format
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Hex:
		bytes = withChecksum(bytes)
		fallthrough
	case HexNC:
		return hexPrefix + hex.EncodeToString(bytes), nil
	case CB58:
		if len(bytes) > maxCB58Size {
			return "", fmt.Errorf("byte slice length (%d) > maximum for cb58 (%d)", len(bytes), maxCB58Size)
		}
		return base58.Encode(withChecksum(bytes)), nil
	default:
		return "", errInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding
// If [str] is the empty string, returns a nil byte slice
func Decode(encoding Encoding, str string) ([]byte, error) {
	if !encoding.valid() {
		return nil, errInvalidEncoding
	}
	if len(str) == 0 {
		return nil, nil
	}

	var (
		decodedBytes []byte
		err          error
	)
	switch encoding {
	case Hex, HexNC:
		if !strings.HasPrefix(str, hexPrefix) {
			return nil, errMissingHexPrefix
		}
		decodedBytes, err = hex.DecodeString(str[len(hexPrefix):])
	case CB58:
		decodedBytes, err = base58.Decode(str)
	}
	if err != nil {
		return nil, err
	}
	if encoding == HexNC {
		return decodedBytes, nil
	}
	if len(decodedBytes) < checksumLen {
		return nil, errMissingChecksum
	}

	// Verify the checksum
	rawBytes := decodedBytes[:len(decodedBytes)-checksumLen]
	checksum := decodedBytes[len(decodedBytes)-checksumLen:]
	if !bytes.Equal(checksum, hashing.Checksum(rawBytes, checksumLen)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}

func withChecksum(b []byte) []byte {
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], hashing.Checksum(b, checksumLen))
	return checked
}
