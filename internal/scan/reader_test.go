package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		text string
		enc  Encoding
	}{
		{"utf8", []byte("Hi5! 你好。\n"), "Hi5! 你好。\n", UTF8},
		{"gbk", []byte{0xC4, 0xE3, 0xBA, 0xC3}, "你好", GBK},
		{"latin1", []byte("caf\xe9"), "café", Latin1},
		{"latin1 high byte", []byte{0xFF}, "ÿ", Latin1},
		{"cp1252 euro", []byte("a\x80b"), "a\u0080b", Latin1},
		{"empty", nil, "", UTF8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, enc, err := Decode(tc.data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if text != tc.text {
				t.Fatalf("expected %q, got %q", tc.text, text)
			}
			if enc != tc.enc {
				t.Fatalf("expected encoding %s, got %s", tc.enc, enc)
			}
		})
	}
}

func TestReadTextKeepsCarriageReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("a\r\nb"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, _, err := ReadText(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "a\r\nb" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestReadTextMissingFile(t *testing.T) {
	if _, _, err := ReadText(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
