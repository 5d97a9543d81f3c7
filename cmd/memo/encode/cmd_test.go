// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/memo/memo"
)

func TestEncodeCommand(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	c := Command()
	c.SetOut(&out)
	c.SetArgs([]string{
		"--receiver", "0xEA9808f0Ac504d1F521B5BbdfC33e6f1953757a7",
		"--payload", "a payload",
		"--revert-address", "tb1q6rufg6myrxurdn0h57d2qhtm9zfmjw2mzcm05q",
		"--format", "compact-short",
		"--log-display-level", "off",
	})
	require.NoError(c.Execute())
	require.Equal(
		"0x5a011007ea9808f0ac504d1f521b5bbdfc33e6f1953757a70961207061796c6f61642a746231713672756667366d7972787572646e3068353764327168746d397a666d6a77326d7a636d303571",
		strings.TrimSpace(out.String()),
	)
}

func TestEncodeCommandLengthExceeded(t *testing.T) {
	c := Command()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	c.SetArgs([]string{
		"--receiver", "0xEA9808f0Ac504d1F521B5BbdfC33e6f1953757a7",
		"--payload", strings.Repeat("a", 256),
		"--format", "compact-short",
		"--log-display-level", "off",
	})
	require.ErrorIs(t, c.Execute(), memo.ErrLengthExceeded)
}
