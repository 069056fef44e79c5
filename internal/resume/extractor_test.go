package resume

import (
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("cv.txt", []byte("Senior Go engineer"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "Senior Go engineer" {
		t.Fatalf("unexpected text: %s", got)
	}
}

func TestExtractTextUppercaseExtension(t *testing.T) {
	got, err := ExtractText("CV.TXT", []byte("plain text"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "plain text" {
		t.Fatalf("unexpected text: %s", got)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("cv.docx", []byte("binary"))
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if !strings.Contains(err.Error(), "unsupported resume type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText("cv.pdf", []byte("not a pdf"))
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}
