// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encode

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/memo/config"
	"github.com/ava-labs/memo/memo"
	"github.com/ava-labs/memo/utils/formatting"
	"github.com/ava-labs/memo/utils/logging"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode",
		Short: "Encodes a memo from its receiver, payload and revert address",
		Args:  cobra.NoArgs,
		RunE:  encodeFunc,
	}
	config.AddEncodeFlags(c.Flags())
	return c
}

func encodeFunc(c *cobra.Command, _ []string) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	logConfig, err := config.GetLoggingConfig(v)
	if err != nil {
		return err
	}
	log := logging.New("encode", logConfig)
	defer log.Stop()

	encodeConfig, err := config.GetEncodeConfig(v)
	if err != nil {
		return err
	}

	b, err := memo.EncodeToBytes(&encodeConfig.Header, encodeConfig.Fields)
	if err != nil {
		log.Error("failed to encode memo",
			zap.Stringer("format", encodeConfig.Header.EncodingFmt),
			zap.Error(err),
		)
		return err
	}
	log.Debug("encoded memo",
		zap.Stringer("format", encodeConfig.Header.EncodingFmt),
		zap.Stringer("opCode", encodeConfig.Header.OpCode),
		zap.Stringer("receiver", encodeConfig.Fields.Receiver),
		zap.Int("size", len(b)),
	)

	str, err := formatting.Encode(encodeConfig.OutputEncoding, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), str)
	return err
}
