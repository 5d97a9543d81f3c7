// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

// Useful bytes buckets

// MemoBytesBuckets spans the header-only memo up to the largest
// CompactLong memo.
var MemoBytesBuckets = []float64{
	1 << 5, // a header and a receiver
	1 << 6,
	1 << 7, // ABI memos with short fields
	1 << 8,
	1 << 9,
	1 << 10, // 1 KiB
	1 << 12,
	1 << 14,
	1 << 16, // 64 KiB
	1 << 17,
	// anything larger than 128 KiB will be bucketed together
}
