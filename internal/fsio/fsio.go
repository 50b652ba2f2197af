// Package fsio provides bounded file reads for scanning untrusted trees.
// Every read carries a deadline and a size cap so one huge, corrupt, or
// symlink-looped file cannot stall a scan.
package fsio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrTooLarge indicates a file exceeded the configured size cap.
var ErrTooLarge = errors.New("file exceeds size limit")

// ReadFile reads path within timeout, refusing files larger than maxSize
// bytes. A maxSize of zero disables the size check. The read itself runs in
// a goroutine; on deadline the caller moves on and the goroutine's result
// is dropped.
func ReadFile(ctx context.Context, path string, timeout time.Duration, maxSize int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrTooLarge, path, info.Size())
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}

// IsBinary reports whether data looks like binary content, using the
// git heuristic: a NUL byte within the first 8000 bytes.
func IsBinary(data []byte) bool {
	probe := data
	if len(probe) > 8000 {
		probe = probe[:8000]
	}
	return bytes.IndexByte(probe, 0) >= 0
}
