/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package batch

import "math"

// DynamoDB per-call batch limits.
const (
	// MaxBatchReadSize is the largest number of keys one BatchGetItem call
	// may carry.
	MaxBatchReadSize = 100

	// MaxBatchWriteSize is the largest number of write requests one
	// BatchWriteItem call may carry.
	MaxBatchWriteSize = 25
)

// Options configures one bulk operation.
type Options struct {
	// AutoRetry is the number of additional attempts permitted beyond the
	// initial call. Only a non-negative integral number is accepted; any
	// other value (negative, fractional, non-numeric, or absent) silently
	// normalizes to zero rather than raising an error.
	AutoRetry any
}

// NormalizeAutoRetry applies the permissive acceptance rule for the retry
// budget. -1, 1.5 and "5" all normalize to 0, exactly like an omitted value.
func NormalizeAutoRetry(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		if v < 0 {
			return 0
		}
		return v
	case int8:
		return NormalizeAutoRetry(int(v))
	case int16:
		return NormalizeAutoRetry(int(v))
	case int32:
		return NormalizeAutoRetry(int(v))
	case int64:
		if v < 0 || v > math.MaxInt32 {
			return 0
		}
		return int(v)
	case uint:
		if uint64(v) > math.MaxInt32 {
			return 0
		}
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		if v > math.MaxInt32 {
			return 0
		}
		return int(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0
		}
		return int(v)
	case float32:
		return NormalizeAutoRetry(float64(v))
	case float64:
		if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
			return 0
		}
		return int(v)
	default:
		return 0
	}
}

// chunk partitions entries into slices of at most size elements. Boundaries
// are a pure function of the input length, never of I/O timing.
func chunk[T any](entries []T, size int) [][]T {
	if len(entries) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		chunks = append(chunks, entries[start:end])
	}
	return chunks
}
