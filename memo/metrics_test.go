// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMeteredCodec(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	c, err := NewMeteredCodec(NewCodec(), "memo", reg)
	require.NoError(err)
	m := c.(*meteredCodec)

	fields := newTestFields(t)
	memo, err := c.Encode(&Header{EncodingFmt: EncodingFmtCompactShort}, fields)
	require.NoError(err)

	_, err = c.Encode(&Header{EncodingFmt: EncodingFmtCompactShort}, &FieldsV0{Payload: make([]byte, 300)})
	require.ErrorIs(err, ErrLengthExceeded)

	_, err = c.Encode(nil, fields)
	require.ErrorIs(err, ErrInvalidInput)

	_, _, err = c.Decode(memo)
	require.NoError(err)

	_, _, err = c.Decode(memo[:2])
	require.ErrorIs(err, ErrMalformedFields)

	require.Equal(1.0, testutil.ToFloat64(m.encodes.WithLabelValues(compactShortStr, successResult)))
	require.Equal(1.0, testutil.ToFloat64(m.encodes.WithLabelValues(compactShortStr, failureResult)))
	require.Equal(1.0, testutil.ToFloat64(m.encodes.WithLabelValues(unknownStr, failureResult)))
	require.Equal(1.0, testutil.ToFloat64(m.decodes.WithLabelValues(compactShortStr, successResult)))
	require.Equal(1.0, testutil.ToFloat64(m.decodes.WithLabelValues(unknownStr, failureResult)))

	families, err := reg.Gather()
	require.NoError(err)
	for _, family := range families {
		if family.GetName() != "memo_encoded_size" {
			continue
		}
		require.Len(family.GetMetric(), 1)
		histogram := family.GetMetric()[0].GetHistogram()
		require.Equal(uint64(1), histogram.GetSampleCount())
		require.Equal(float64(len(memo)), histogram.GetSampleSum())
	}
}

func TestMeteredCodecDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMeteredCodec(NewCodec(), "memo", reg)
	require.NoError(t, err)

	_, err = NewMeteredCodec(NewCodec(), "memo", reg)
	require.Error(t, err)
}
