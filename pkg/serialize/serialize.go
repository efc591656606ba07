package serialize

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	pairSep  = '&'
	fieldSep = '='
)

// Field is a single key=value pair of a record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered list of fields, encoded as key=value&key=value.
type Record []Field

// Get returns the value of the last field named key. Later fields win so
// that a value spliced onto the end of a record overrides earlier ones.
func (r Record) Get(key string) (string, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Key == key {
			return r[i].Value, true
		}
	}
	return "", false
}

// Sanitize strips the metacharacters of the encoding from an untrusted
// value. Every other byte is kept as is, valid UTF-8 or not.
func Sanitize(value string) string {
	out := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c != pairSep && c != fieldSep {
			out = append(out, c)
		}
	}
	return string(out)
}

// Encode serializes r. Keys and values must already be free of '=' and '&'.
func Encode(r Record) []byte {
	var buf bytes.Buffer
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(pairSep)
		}
		buf.WriteString(f.Key)
		buf.WriteByte(fieldSep)
		buf.WriteString(f.Value)
	}
	return buf.Bytes()
}

// Parse decodes a key=value&key=value record. Empty pairs are skipped;
// a pair without '=' is an error.
func Parse(data []byte) (Record, error) {
	var r Record
	for _, pair := range bytes.Split(data, []byte{pairSep}) {
		if len(pair) == 0 {
			continue
		}
		parts := bytes.SplitN(pair, []byte{fieldSep}, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid pair read: %q", pair)
		}
		if bytes.IndexByte(parts[1], fieldSep) >= 0 {
			return nil, fmt.Errorf("invalid value read: %q", parts[1])
		}
		r = append(r, Field{Key: string(parts[0]), Value: string(parts[1])})
	}
	return r, nil
}

// ProfileFor builds the user profile record for an email address.
// The email is sanitized so it cannot inject extra fields.
func ProfileFor(email string) Record {
	return Record{
		{Key: "email", Value: Sanitize(email)},
		{Key: "uid", Value: "10"},
		{Key: "role", Value: "user"},
	}
}

// Blocks renders buf as space separated hex blocks of size n.
// A trailing partial block is rendered as is.
func Blocks(buf []byte, n int) string {
	var parts []string
	for len(buf) > 0 {
		end := n
		if end > len(buf) {
			end = len(buf)
		}
		parts = append(parts, hex.EncodeToString(buf[:end]))
		buf = buf[end:]
	}
	return strings.Join(parts, " ")
}
