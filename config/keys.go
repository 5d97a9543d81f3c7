// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

// Flag, environment and config file keys
const (
	ConfigFileKey      = "config-file"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"
	LogsDirKey         = "log-dir"

	ReceiverKey       = "receiver"
	PayloadKey        = "payload"
	PayloadHexKey     = "payload-hex"
	RevertAddressKey  = "revert-address"
	OpCodeKey         = "op-code"
	FormatKey         = "format"
	OutputEncodingKey = "output-encoding"

	InputKey         = "input"
	InputEncodingKey = "input-encoding"

	// EnvPrefix is prepended to the upper-cased, underscored key when a value
	// is read from the environment, e.g. MEMO_REVERT_ADDRESS.
	EnvPrefix = "memo"
)
