// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/memo/utils/metric"
	"github.com/ava-labs/memo/utils/wrappers"
)

const (
	formatLabel = "format"
	resultLabel = "result"

	successResult = "success"
	failureResult = "failure"
)

var _ Codec = (*meteredCodec)(nil)

type meteredCodec struct {
	codec Codec

	encodes     *prometheus.CounterVec
	decodes     *prometheus.CounterVec
	encodedSize *prometheus.HistogramVec
}

// NewMeteredCodec wraps [codec] with counters of encode and decode calls per
// encoding format and a histogram of encoded memo sizes.
func NewMeteredCodec(codec Codec, namespace string, reg prometheus.Registerer) (Codec, error) {
	m := &meteredCodec{
		codec: codec,
		encodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "encodes",
				Help:      "number of memos encoded",
			},
			[]string{formatLabel, resultLabel},
		),
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decodes",
				Help:      "number of memos decoded",
			},
			[]string{formatLabel, resultLabel},
		),
		encodedSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "encoded_size",
				Help:      "size, in bytes, of encoded memos",
				Buckets:   metric.MemoBytesBuckets,
			},
			[]string{formatLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.encodes),
		reg.Register(m.decodes),
		reg.Register(m.encodedSize),
	)
	return m, errs.Err
}

func (m *meteredCodec) Encode(header *Header, fields *FieldsV0) ([]byte, error) {
	format := unknownStr
	if header != nil {
		format = header.EncodingFmt.String()
	}

	b, err := m.codec.Encode(header, fields)
	if err != nil {
		m.encodes.WithLabelValues(format, failureResult).Inc()
		return nil, err
	}
	m.encodes.WithLabelValues(format, successResult).Inc()
	m.encodedSize.WithLabelValues(format).Observe(float64(len(b)))
	return b, nil
}

func (m *meteredCodec) Decode(b []byte) (*Header, *FieldsV0, error) {
	header, fields, err := m.codec.Decode(b)
	if err != nil {
		m.decodes.WithLabelValues(unknownStr, failureResult).Inc()
		return nil, nil, err
	}
	m.decodes.WithLabelValues(header.EncodingFmt.String(), successResult).Inc()
	return header, fields, nil
}
