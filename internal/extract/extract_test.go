package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDOCX(t *testing.T) {
	payload := buildDOCX(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Backend engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	text, err := TextFromBytes(context.Background(), payload, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "John Doe") || !strings.Contains(text, "Backend engineer") {
		t.Fatalf("text = %q", text)
	}
	if !strings.Contains(text, "John Doe\n") {
		t.Fatalf("paragraph break missing in %q", text)
	}
}

func TestTextFromBytesZipResolvesToDOCX(t *testing.T) {
	payload := buildDOCX(t, `<w:document xmlns:w="x"><w:p><w:t>hello</w:t></w:p></w:document>`)
	text, err := TextFromBytes(context.Background(), payload, "application/zip", "resume.bin")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if !strings.Contains(text, "hello") {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesPlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("plain resume body"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "plain resume body" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesExtensionFallback(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("from a bare stream"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "from a bare stream" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0x00, 0x01}, "image/png", "photo.png")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestNormalizeMimeType(t *testing.T) {
	tests := []struct {
		mime string
		name string
		want string
	}{
		{"application/pdf", "a.pdf", mimePDF},
		{"APPLICATION/PDF; charset=binary", "a.pdf", mimePDF},
		{"", "resume.docx", mimeDOCX},
		{"application/octet-stream", "resume.pdf", mimePDF},
		{"image/png", "a.png", "image/png"},
	}
	for _, tt := range tests {
		if got := normalizeMimeType(tt.mime, tt.name, nil); got != tt.want {
			t.Fatalf("normalizeMimeType(%q, %q) = %q, want %q", tt.mime, tt.name, got, tt.want)
		}
	}
}
