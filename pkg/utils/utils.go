package utils

// Chunks divides buf into consecutive n-byte slices. A trailing partial
// chunk is dropped. The returned slices alias buf.
func Chunks(buf []byte, n int) [][]byte {
	var chunks [][]byte
	for len(buf) >= n {
		chunks = append(chunks, buf[:n])
		buf = buf[n:]
	}
	return chunks
}

// Block returns the i-th n-byte block of buf, or nil if buf is too short.
func Block(buf []byte, i, n int) []byte {
	if i < 0 || (i+1)*n > len(buf) {
		return nil
	}
	return buf[i*n : (i+1)*n]
}

// Dup returns a copy of buf.
func Dup(buf []byte) []byte {
	return append([]byte{}, buf...)
}

// Concat joins bufs into a newly allocated slice.
func Concat(bufs ...[]byte) []byte {
	var n int
	for _, b := range bufs {
		n += len(b)
	}
	out := make([]byte, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// XorInto sets dst[i] = a[i] ^ b[i] for the length of the shortest input
// and returns the number of bytes written.
func XorInto(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}
