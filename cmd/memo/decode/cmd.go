// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package decode

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/memo/config"
	"github.com/ava-labs/memo/memo"
	"github.com/ava-labs/memo/utils/logging"
)

// Reply is the JSON rendering of a decoded memo.
type Reply struct {
	Header        *memo.Header   `json:"header"`
	Receiver      common.Address `json:"receiver"`
	Payload       hexutil.Bytes  `json:"payload"`
	RevertAddress string         `json:"revertAddress"`
}

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "decode",
		Short: "Decodes a memo and prints its header and fields as JSON",
		Args:  cobra.NoArgs,
		RunE:  decodeFunc,
	}
	config.AddDecodeFlags(c.Flags())
	return c
}

func decodeFunc(c *cobra.Command, _ []string) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	logConfig, err := config.GetLoggingConfig(v)
	if err != nil {
		return err
	}
	log := logging.New("decode", logConfig)
	defer log.Stop()

	decodeConfig, err := config.GetDecodeConfig(v)
	if err != nil {
		return err
	}

	header, fields, err := memo.DecodeFromBytes(decodeConfig.Memo)
	if err != nil {
		log.Error("failed to decode memo",
			zap.Int("size", len(decodeConfig.Memo)),
			zap.Error(err),
		)
		return err
	}
	log.Debug("decoded memo",
		zap.Stringer("format", header.EncodingFmt),
		zap.Stringer("opCode", header.OpCode),
	)

	replyJSON, err := json.MarshalIndent(Reply{
		Header:        header,
		Receiver:      fields.Receiver,
		Payload:       fields.Payload,
		RevertAddress: fields.RevertAddress,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), string(replyJSON))
	return err
}
