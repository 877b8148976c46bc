// Package buffer provides a thread-safe, line-oriented document buffer.
// It is the engine-side model of the host document: transformations read
// a line range out of it and write the replacement range back.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - 1-based inclusive line addressing, matching the Block data model
//   - Line range extraction and replacement (the replacement may have a
//     different line count)
//   - Line ending normalization and detection
//
// Basic usage:
//
//	buf := buffer.FromString("alpha\nbeta\ngamma")
//
//	lines, _ := buf.Lines(1, 2)          // ["alpha", "beta"]
//	_ = buf.ReplaceRange(1, 2, []string{"ALPHA"})
//	text := buf.Text()                   // "ALPHA\ngamma"
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read
// lock, while write operations acquire an exclusive write lock.
package buffer
