package generator

import (
	"bytes"
	"sync"
)

const moduleBufferSize = 16 * 1024

var moduleBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, moduleBufferSize))
	},
}

// getBuffer returns an empty buffer for a tag module.
func getBuffer() *bytes.Buffer {
	buf := moduleBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to the pool. The caller must not keep
// references to its bytes.
func putBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 1<<20 {
		return
	}
	moduleBufferPool.Put(buf)
}
