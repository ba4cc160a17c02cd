package crypto

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// CompressZlib deflates data and returns the compressed bytes. There is no
// third-party deflate implementation among the retrieved examples, so this
// layer is built directly on the standard library's compress/zlib, which
// is the same algorithm vanilla Minecraft uses for packet compression —
// there is no ecosystem codec to prefer over it here.
func CompressZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("crypto: zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("crypto: zlib compress: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressZlib inflates data, refusing to produce more than maxSize
// bytes of output so a malicious or corrupt frame cannot be used to exhaust
// memory.
func DecompressZlib(data []byte, maxSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("crypto: zlib reader: %w", err)
	}
	defer r.Close()

	limited := io.LimitReader(r, int64(maxSize)+1)
	out, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("crypto: zlib decompress: %w", err)
	}
	if len(out) > maxSize {
		return nil, fmt.Errorf("crypto: decompressed size exceeds %d bytes", maxSize)
	}
	return out, nil
}
