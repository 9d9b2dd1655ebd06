// Package encoding turns raw file bytes into UTF-8 text and recognizes
// binary content that cannot be analyzed. Character sets are detected with
// golang.org/x/net/html/charset and decoded through golang.org/x/text.
package encoding

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const (
	// sniffLen is the window http.DetectContentType inspects.
	sniffLen = 512
	// nullCheckLen is the window inspected for null bytes.
	nullCheckLen = 1024
	// nullThreshold is the null-byte ratio above which content is binary.
	nullThreshold = 0.15
)

// textMIMETypes lists non-"text/" MIME types that still carry text.
var textMIMETypes = map[string]bool{
	"application/json":       true,
	"application/xml":        true,
	"application/javascript": true,
	"application/yaml":       true,
	"application/toml":       true,
	"application/csv":        true,
	"image/svg+xml":          true,
}

// textMIMESuffixes lists structured-syntax suffixes that imply text.
var textMIMESuffixes = []string{"+xml", "+json"}

// Decoder detects binary content and converts raw bytes to UTF-8 text.
type Decoder interface {
	// IsBinary reports whether content is likely binary, combining MIME
	// sniffing over the first 512 bytes with a null-byte ratio check over
	// the first 1024 bytes.
	IsBinary(content []byte) bool

	// DecodeText converts content to a UTF-8 string, detecting the source
	// character set. It returns the decoded text and the IANA name of the
	// encoding used. Content that cannot be decoded to valid UTF-8 is an
	// error.
	DecodeText(content []byte) (text string, encodingName string, err error)
}

type charsetDecoder struct {
	fallback string
}

// NewDecoder returns a Decoder. fallback names the character set assumed
// when detection is uncertain; empty means trust the detector's guess.
func NewDecoder(fallback string) Decoder {
	return &charsetDecoder{fallback: fallback}
}

func (d *charsetDecoder) DecodeText(content []byte) (string, string, error) {
	if len(content) == 0 {
		return "", "utf-8", nil
	}

	enc, name, certain := charset.DetermineEncoding(content, "")
	if !certain && d.fallback != "" {
		if fbEnc, fbName := charset.Lookup(d.fallback); fbEnc != nil {
			enc, name = fbEnc, fbName
		}
	}

	decoded := content
	if enc != nil {
		reader := transform.NewReader(bytes.NewReader(content), enc.NewDecoder())
		out, err := io.ReadAll(reader)
		if err != nil {
			return "", name, fmt.Errorf("decoding from %q: %w", name, err)
		}
		decoded = out
	}

	if !utf8.Valid(decoded) {
		return "", name, fmt.Errorf("content is not valid UTF-8 after decoding from %q", name)
	}
	if name == "" {
		name = "utf-8"
	}
	return string(decoded), name, nil
}

func (d *charsetDecoder) IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	sniff := content
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	if !isTextMIME(http.DetectContentType(sniff)) {
		return true
	}

	window := content
	if len(window) > nullCheckLen {
		window = window[:nullCheckLen]
	}
	nulls := bytes.Count(window, []byte{0x00})
	return float64(nulls)/float64(len(window)) > nullThreshold
}

// isTextMIME reports whether a sniffed content type plausibly carries text.
// application/octet-stream passes through so the null-byte check decides.
func isTextMIME(contentType string) bool {
	mimeType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	if textMIMETypes[mimeType] {
		return true
	}
	for _, suffix := range textMIMESuffixes {
		if strings.HasSuffix(mimeType, suffix) {
			return true
		}
	}
	return mimeType == "application/octet-stream"
}
