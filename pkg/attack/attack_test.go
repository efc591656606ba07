package attack

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/kargakis/ecbreak/pkg/modes"
	"github.com/kargakis/ecbreak/pkg/oracle"
	"github.com/kargakis/ecbreak/pkg/parameters"
	"github.com/kargakis/ecbreak/pkg/pkcs7"
	"github.com/kargakis/ecbreak/pkg/serialize"
	"github.com/kargakis/ecbreak/pkg/utils/random"
)

var (
	testKey    = []byte("0123456789abcdef")
	testIV     = []byte("fedcba9876543210")
	testSecret = []byte("Rollin' in my 5.0\n" +
		"With my rag-top down so my hair can blow\n" +
		"The girlies on standby waving just to say hi\n" +
		"Did you stop? No, I just drove by\n")
)

// testPrefix returns n reproducible bytes that never contain the filler.
func testPrefix(n int) []byte {
	p := random.Bytes(random.NewSeeded([]byte{byte(n), 'p'}), n)
	for i := range p {
		if p[i] == parameters.Filler {
			p[i] ^= 0x80
		}
	}
	return p
}

func newECB(t *testing.T, prefix, suffix []byte) *oracle.Cipher {
	t.Helper()
	o, err := oracle.NewECB(testKey, prefix, suffix)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		prefix, suffix int
	}{
		{0, 0},
		{0, 15},
		{0, 16},
		{3, 0},
		{5, 138},
		{16, 16},
		{33, 1},
		{100, 7},
	}

	for _, tt := range tests {
		o := newECB(t, testPrefix(tt.prefix), bytes.Repeat([]byte{'s'}, tt.suffix))
		g, ok := Measure(o)
		if !ok {
			t.Errorf("prefix %d, suffix %d: no block size found", tt.prefix, tt.suffix)
			continue
		}
		want := Geometry{BlockSize: parameters.BlockSize, FixedLength: tt.prefix + tt.suffix}
		if g != want {
			t.Errorf("prefix %d, suffix %d: got %+v, want %+v", tt.prefix, tt.suffix, g, want)
		}
	}
}

func TestDetectBlockSize(t *testing.T) {
	bs, ok := DetectBlockSize(newECB(t, nil, testSecret))
	if !ok || bs != parameters.BlockSize {
		t.Errorf("got %d, %v, want %d", bs, ok, parameters.BlockSize)
	}

	// An oracle with constant output length is not a block cipher.
	constant := oracle.Func(func([]byte) []byte { return make([]byte, 32) })
	if _, ok := DetectBlockSize(constant); ok {
		t.Errorf("expected no block size for a constant length oracle")
	}

	// A toy 8-byte block cipher.
	eight := oracle.Func(func(input []byte) []byte { return pkcs7.PadBlock(input, 8) })
	if bs, ok := DetectBlockSize(eight); !ok || bs != 8 {
		t.Errorf("got %d, %v, want 8", bs, ok)
	}
}

func TestIsECB(t *testing.T) {
	if !IsECB(newECB(t, nil, testSecret), parameters.BlockSize) {
		t.Errorf("ECB oracle not detected")
	}
	cbc, err := oracle.NewCBC(testKey, testIV, nil, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if IsECB(cbc, parameters.BlockSize) {
		t.Errorf("CBC oracle detected as ECB")
	}
}

func TestDetectMode(t *testing.T) {
	o := oracle.NewRandomMode(random.NewSeeded([]byte("detect mode")))
	for i := 0; i < 50; i++ {
		got := DetectMode(o, parameters.BlockSize)
		if want := o.Last(); got != want {
			t.Errorf("query %d: got %v, want %v", i, got, want)
		}
	}
}

func TestDetectPrefixLength(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 15, 16, 17, 31, 32, 33, 47, 100} {
		o := newECB(t, testPrefix(n), testSecret)
		got, ok := DetectPrefixLength(o, parameters.BlockSize)
		if !ok {
			t.Errorf("prefix %d: no attacker controlled blocks found", n)
			continue
		}
		if got != n {
			t.Errorf("got prefix length %d, want %d", got, n)
		}
	}

	// A suffix starting with the filler stretches the pair past the
	// start of the input.
	o := newECB(t, nil, []byte("And now for something completely different\n"))
	if got, ok := DetectPrefixLength(o, parameters.BlockSize); ok {
		t.Errorf("suffix starting with the filler: got prefix length %d", got)
	}

	cbc, err := oracle.NewCBC(testKey, testIV, testPrefix(5), testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := DetectPrefixLength(cbc, parameters.BlockSize); ok {
		t.Errorf("found a prefix through CBC")
	}
}

func TestRecoverSuffix(t *testing.T) {
	got := RecoverSuffix(newECB(t, nil, testSecret), parameters.BlockSize, 0, EnglishFrequency())
	want := append(append([]byte{}, testSecret...), 0x01)
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got = RecoverSuffix(newECB(t, testPrefix(7), []byte("short")), parameters.BlockSize, 7, EnglishFrequency())
	if string(got) != "short\x01" {
		t.Errorf("got %q, want %q", got, "short\x01")
	}
}

func TestBreak(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 33} {
		var progress bytes.Buffer
		b := NewBreaker(newECB(t, testPrefix(n), testSecret))
		b.Progress = &progress

		got, err := b.Break()
		if err != nil {
			t.Errorf("prefix %d: %v", n, err)
			continue
		}
		if !bytes.Equal(got, testSecret) {
			t.Errorf("prefix %d: got %q, want %q", n, got, testSecret)
		}
		if line := "Prefix length: "; !strings.Contains(progress.String(), line) {
			t.Errorf("prefix %d: progress is missing %q:\n%s", n, line, progress.String())
		}
	}
}

func TestBreakEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
	}{
		{"empty", nil},
		{"single byte", []byte{'x'}},
		{"one block", []byte("exactly 16 bytes")},
		{"binary", []byte{0, 0xff, 0x10, 0x01, 0x02, 0x80, 'z'}},
	}

	for _, tt := range tests {
		b := &Breaker{Oracle: newECB(t, testPrefix(3), tt.secret)}
		got, err := b.Break()
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if !bytes.Equal(got, tt.secret) {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.secret)
		}
	}
}

func TestBreakSecretStartingWithFiller(t *testing.T) {
	secret := []byte("And now for something completely different\n")
	got, err := NewBreaker(newECB(t, nil, secret)).Break()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("got %q, want %q", got, secret)
	}
}

func TestBreakErrors(t *testing.T) {
	cbc, err := oracle.NewCBC(testKey, testIV, nil, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	stream := oracle.Func(func(input []byte) []byte { return append([]byte("x"), input...) })
	constant := oracle.Func(func([]byte) []byte { return make([]byte, 48) })

	tests := []struct {
		name string
		o    oracle.Oracle
		want error
	}{
		{"cbc", cbc, ErrNotECB},
		{"stream", stream, ErrNoBlockSize},
		{"constant", constant, ErrNoBlockSize},
	}

	for _, tt := range tests {
		_, err := NewBreaker(tt.o).Break()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestForgeProfile(t *testing.T) {
	p, err := oracle.NewProfile(testKey)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		role string
		want string
	}{
		{"admin", "email=AAAAAAAAAAAAA&uid=10&role=admin"},
		{"administrator of all things", "email=AAAAAAAAAAAAA&uid=10&role=administrator of all things"},
		{"exactly 16 bytes", "email=AAAAAAAAAAAAA&uid=10&role=exactly 16 bytes"},
	}

	for _, tt := range tests {
		ct, err := NewBreaker(p).ForgeTrailingValue(len("user"), []byte(tt.role))
		if err != nil {
			t.Fatalf("%s: %v", tt.role, err)
		}
		if len(ct)%parameters.BlockSize != 0 {
			t.Errorf("%s: forged %d bytes", tt.role, len(ct))
		}
		r, err := p.Decrypt(ct)
		if err != nil {
			t.Fatalf("%s: %v", tt.role, err)
		}
		if role, _ := r.Get("role"); role != tt.role {
			t.Errorf("got role %q, want %q", role, tt.role)
		}
		if got := string(serialize.Encode(r)); got != tt.want {
			t.Errorf("got record %q, want %q", got, tt.want)
		}
	}

	if _, err := NewBreaker(p).ForgeTrailingValue(100, []byte("admin")); err == nil {
		t.Errorf("expected an error when replacing more than the suffix")
	}
}

func TestForgeTrailingValue(t *testing.T) {
	o := newECB(t, []byte("id="), []byte(";level=low"))
	g, ok := Measure(o)
	if !ok {
		t.Fatal("no block size")
	}
	ct := ForgeTrailingValue(o, g, 3, len("low"), []byte("high"))

	plain, err := modes.DecryptECBPad(ct, testKey)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(plain), ";level=high") {
		t.Errorf("got %q", plain)
	}
}

func TestEnglishFrequency(t *testing.T) {
	alphabet := EnglishFrequency()
	if len(alphabet) != 256 {
		t.Fatalf("got %d bytes, want 256", len(alphabet))
	}
	var seen [256]bool
	for _, b := range alphabet {
		if seen[b] {
			t.Fatalf("byte %#x repeated", b)
		}
		seen[b] = true
	}
	if got := string(alphabet[:7]); got != " etaoin" {
		t.Errorf("alphabet starts with %q", got)
	}
	if i := bytes.IndexByte(alphabet, '\n'); i != 1+26+10 {
		t.Errorf("newline at %d", i)
	}
}
