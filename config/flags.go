// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/memo/memo"
	"github.com/ava-labs/memo/utils/formatting"
	"github.com/ava-labs/memo/utils/logging"
)

// AddGlobalFlags adds the flags shared by every command to [fs].
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specifies a JSON or YAML config file")
	fs.String(LogLevelKey, logging.Info.String(), "The log level written to the log file")
	fs.String(LogDisplayLevelKey, "", "The log level written to stderr. Defaults to the value of --log-level")
	fs.String(LogFormatKey, logging.Plain.String(), "The format of logs written to stderr. One of {plain, json}")
	fs.String(LogsDirKey, "", "Directory to write rotated log files to. Empty disables file logging")
}

// AddEncodeFlags adds the flags of the encode command to [fs].
func AddEncodeFlags(fs *pflag.FlagSet) {
	AddGlobalFlags(fs)
	fs.String(ReceiverKey, "", "EVM address that receives the transfer")
	fs.String(PayloadKey, "", "Payload, taken as raw UTF-8 bytes")
	fs.String(PayloadHexKey, "", "Payload as 0x prefixed hex. Overrides --payload")
	fs.String(RevertAddressKey, "", "Address funds are returned to if the call reverts")
	fs.String(OpCodeKey, memo.OpDepositAndCall.String(), "One of {deposit, deposit-and-call, call, invalid}")
	fs.String(FormatKey, memo.EncodingFmtABI.String(), "One of {abi, compact-short, compact-long}")
	fs.String(OutputEncodingKey, formatting.HexNC.String(), "One of {hex, hexnc, cb58}")
}

// AddDecodeFlags adds the flags of the decode command to [fs].
func AddDecodeFlags(fs *pflag.FlagSet) {
	AddGlobalFlags(fs)
	fs.String(InputKey, "", "Encoded memo")
	fs.String(InputEncodingKey, formatting.HexNC.String(), "One of {hex, hexnc, cb58}")
}
