package handler

import (
	"bytes"
	"sync"
)

// Spin responses carry one hex hash per draw, so start comfortably above that
const initialBufferSize = 2048

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one fallback-heavy spin does not pin memory
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*initialBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
