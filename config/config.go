// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/memo/memo"
	"github.com/ava-labs/memo/utils/formatting"
	"github.com/ava-labs/memo/utils/logging"
	"github.com/ava-labs/memo/utils/wrappers"
)

var errMissingInput = errors.New("missing input")

// EncodeConfig is everything the encode command needs.
type EncodeConfig struct {
	Header         memo.Header
	Fields         *memo.FieldsV0
	OutputEncoding formatting.Encoding
}

// DecodeConfig is everything the decode command needs.
type DecodeConfig struct {
	Memo []byte
}

// BuildViper returns a viper instance bound to [fs]. Values are looked up
// in flag, environment, config file order.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func GetLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		logDisplayLevel = displayLevel
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	return loggingConfig, err
}

func GetEncodeConfig(v *viper.Viper) (*EncodeConfig, error) {
	var (
		errs   wrappers.Errs
		config = &EncodeConfig{}
		err    error
	)
	config.Header.EncodingFmt, err = memo.ToEncodingFormat(v.GetString(FormatKey))
	errs.Add(err)
	config.Header.OpCode, err = memo.ToOpCode(v.GetString(OpCodeKey))
	errs.Add(err)
	config.OutputEncoding, err = formatting.ToEncoding(v.GetString(OutputEncodingKey))
	errs.Add(err)
	if errs.Errored() {
		return nil, errs.Err
	}

	payload := []byte(v.GetString(PayloadKey))
	if payloadHex := v.GetString(PayloadHexKey); payloadHex != "" {
		payload, err = formatting.Decode(formatting.HexNC, payloadHex)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse --%s: %w", PayloadHexKey, err)
		}
	}

	config.Fields, err = memo.NewFieldsV0(
		v.GetString(ReceiverKey),
		payload,
		v.GetString(RevertAddressKey),
	)
	if err != nil {
		return nil, err
	}
	return config, nil
}

func GetDecodeConfig(v *viper.Viper) (*DecodeConfig, error) {
	input := v.GetString(InputKey)
	if input == "" {
		return nil, fmt.Errorf("%w: --%s is required", errMissingInput, InputKey)
	}
	inputEncoding, err := formatting.ToEncoding(v.GetString(InputEncodingKey))
	if err != nil {
		return nil, err
	}
	b, err := formatting.Decode(inputEncoding, input)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse --%s: %w", InputKey, err)
	}
	return &DecodeConfig{Memo: b}, nil
}
