package oracle

import (
	"bytes"
	"testing"

	"github.com/kargakis/ecbreak/pkg/aes128"
	"github.com/kargakis/ecbreak/pkg/modes"
	"github.com/kargakis/ecbreak/pkg/utils/random"
)

var (
	testKey = []byte("YELLOW SUBMARINE")
	testIV  = bytes.Repeat([]byte{7}, aes128.BlockSize)
)

func TestECB(t *testing.T) {
	prefix := []byte("prefix")
	suffix := []byte("and the suffix")
	o, err := NewECB(testKey, prefix, suffix)
	if err != nil {
		t.Fatal(err)
	}
	if o.Mode() != ECB {
		t.Errorf("got mode %v", o.Mode())
	}

	input := []byte("user input")
	want, err := modes.EncryptECBPad([]byte("prefixuser inputand the suffix"), testKey)
	if err != nil {
		t.Fatal(err)
	}
	got := o.Query(input)
	if !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
	if !bytes.Equal(o.Query(input), got) {
		t.Errorf("oracle is not query-stable")
	}
	if !bytes.Equal(input, []byte("user input")) {
		t.Errorf("Query modified its input")
	}
}

func TestCBC(t *testing.T) {
	o, err := NewCBC(testKey, testIV, nil, []byte("suffix"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := modes.EncryptCBCPad([]byte("inputsuffix"), testKey, testIV)
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Query([]byte("input")); !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
	if !bytes.Equal(o.Query([]byte("input")), want) {
		t.Errorf("oracle is not query-stable")
	}

	if _, err := NewCBC(testKey, testIV[:4], nil, nil); err == nil {
		t.Errorf("expected an error for a short iv")
	}
}

func TestBadKey(t *testing.T) {
	if _, err := NewECB(testKey[:5], nil, nil); err != aes128.KeySizeError(5) {
		t.Errorf("NewECB: got %v", err)
	}
	if _, err := NewProfile(nil); err != aes128.KeySizeError(0) {
		t.Errorf("NewProfile: got %v", err)
	}
}

func TestFunc(t *testing.T) {
	var o Oracle = Func(func(input []byte) []byte {
		return append([]byte("x"), input...)
	})
	if got := string(o.Query([]byte("yz"))); got != "xyz" {
		t.Errorf("got %q", got)
	}
}

func TestRandomMode(t *testing.T) {
	o := NewRandomMode(random.NewSeeded([]byte("random mode")))
	input := bytes.Repeat([]byte{'A'}, 3*aes128.BlockSize)

	seen := map[Mode]int{}
	for i := 0; i < 64; i++ {
		out := o.Query(input)
		if len(out)%aes128.BlockSize != 0 {
			t.Fatalf("output of %d bytes is not block aligned", len(out))
		}
		// 48 bytes of input plus 10 to 20 bytes of noise.
		if len(out) != 64 && len(out) != 80 {
			t.Fatalf("unexpected output length %d", len(out))
		}
		mode := o.Last()
		seen[mode]++
		if got := modes.HasDuplicateBlocks(out); got != (mode == ECB) {
			t.Errorf("query %d in %v: duplicate blocks = %v", i, mode, got)
		}
	}
	if seen[ECB] == 0 || seen[CBC] == 0 {
		t.Errorf("expected both modes to be used, got %v", seen)
	}
}

func TestProfile(t *testing.T) {
	p, err := NewProfile(testKey)
	if err != nil {
		t.Fatal(err)
	}
	ct := p.Query([]byte("foo@bar.com&role=admin"))
	r, err := p.Decrypt(ct)
	if err != nil {
		t.Fatal(err)
	}
	if email, _ := r.Get("email"); email != "foo@bar.comroleadmin" {
		t.Errorf("email was not sanitized: %q", email)
	}
	if role, _ := r.Get("role"); role != "user" {
		t.Errorf("got role %q, want user", role)
	}
	if uid, _ := r.Get("uid"); uid != "10" {
		t.Errorf("got uid %q, want 10", uid)
	}

	if _, err := p.Decrypt(ct[:len(ct)-1]); err == nil {
		t.Errorf("expected an error for truncated ciphertext")
	}
}

func TestProfileKeepsRawBytes(t *testing.T) {
	p, err := NewProfile(testKey)
	if err != nil {
		t.Fatal(err)
	}
	email := []byte{0xff, 0x80, 'x', '=', 0xc3}
	r, err := p.Decrypt(p.Query(email))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Get("email"); got != "\xff\x80x\xc3" {
		t.Errorf("got email %q", got)
	}

	// Output length depends only on input length.
	high := p.Query(bytes.Repeat([]byte{0xff}, 10))
	low := p.Query(bytes.Repeat([]byte{'A'}, 10))
	if len(high) != len(low) {
		t.Errorf("got %d bytes for 0xff input and %d for 'A' input", len(high), len(low))
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{ECB: "ECB", CBC: "CBC", Mode(5): "Mode(5)"} {
		if got := m.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
