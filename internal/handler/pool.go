package handler

import (
	"bytes"
	"sync"
)

// Week plans and shopping lists encode to a few KB; recipe lists can be
// larger but rarely exceed this.
const maxPooledBufferSize = 64 << 10

// bufferPool reuses encode buffers across responses.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	// Oversized buffers would pin their backing array for the pool's
	// lifetime; let the GC take them instead.
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
