package scan

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Encoding names a decoder tried by ReadText.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	GBK    Encoding = "gbk"
	Latin1 Encoding = "latin-1"
)

type decoder struct {
	name   Encoding
	decode func([]byte) (string, bool)
}

// Tried in order; ISO-8859-1 maps every byte and always succeeds.
var decoders = []decoder{
	{UTF8, decodeUTF8},
	{GBK, decodeGBK},
	{Latin1, strictDecoder(charmap.ISO8859_1)},
}

// ReadText reads path and decodes it with the first encoding that accepts
// its bytes.
func ReadText(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode converts raw bytes to text using the fallback chain.
func Decode(data []byte) (string, Encoding, error) {
	for _, d := range decoders {
		if text, ok := d.decode(data); ok {
			return text, d.name, nil
		}
	}
	return "", "", fmt.Errorf("no encoding could decode %d bytes", len(data))
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// The x/text GBK table maps a lone 0x80 to U+20AC and accepts 0xFF, but
// neither is a valid GBK lead byte.
func decodeGBK(data []byte) (string, bool) {
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < 0x80 {
			continue
		}
		if b == 0x80 || b == 0xFF {
			return "", false
		}
		i++
	}
	return gbkStrict(data)
}

var gbkStrict = strictDecoder(simplifiedchinese.GBK)

// x/text decoders substitute U+FFFD for invalid input instead of failing.
// Neither GBK nor ISO-8859-1 can encode U+FFFD, so its presence means the
// input was not valid for that encoding.
func strictDecoder(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		text := string(out)
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", false
		}
		return text, true
	}
}
