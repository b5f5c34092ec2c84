// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package word

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a small valid PNG to dir and returns its path.
func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
		img.Set(x, 1, color.RGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	path := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuilderCounts(t *testing.T) {
	b := NewBuilder()

	b.AddParagraph("line one\nline two")
	b.AddParagraph("another")
	b.AddTable([][]string{{"a", "b"}, {"c", "d"}})

	if b.Paragraphs() != 2 {
		t.Errorf("paragraphs = %d, want 2", b.Paragraphs())
	}
	if b.Tables() != 1 {
		t.Errorf("tables = %d, want 1", b.Tables())
	}
	if b.Images() != 0 {
		t.Errorf("images = %d, want 0", b.Images())
	}
}

func TestBuilderSave(t *testing.T) {
	b := NewBuilder()
	b.AddParagraph("hello")
	b.AddTable([][]string{{"x"}})
	if err := b.AddImage(writePNG(t, t.TempDir())); err != nil {
		t.Fatalf("AddImage: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "out.docx")
	if err := b.Save(dest); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("stat %s: %v", dest, err)
	}
	if info.Size() == 0 {
		t.Error("saved document is empty")
	}

	// A .docx file is a zip archive.
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("saved document is not a zip archive")
	}
}

func TestAddImage_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBuilder()
	if err := b.AddImage(path); err == nil {
		t.Fatal("expected an error for a corrupt image file")
	}
	if b.Images() != 0 {
		t.Errorf("images = %d, want 0 after a failed add", b.Images())
	}
}

func TestAddImage_MissingFile(t *testing.T) {
	b := NewBuilder()
	if err := b.AddImage(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected an error for a missing image file")
	}
}
