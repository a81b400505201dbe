package pattern

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseCells(t *testing.T) {
	src := "!Name: glider\n.O.\n..O\nOOO\n"
	p, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !slices.Equal(p, want) {
		t.Fatalf("got %v, want %v", p, want)
	}
	if w, h := p.Bounds(); w != 3 || h != 3 {
		t.Fatalf("bounds = %dx%d, want 3x3", w, h)
	}
}

func TestParseRejectsUnknownCharacters(t *testing.T) {
	if _, err := Parse(strings.NewReader("O?O")); err == nil {
		t.Fatal("expected error for '?'")
	}
}

func TestBuiltins(t *testing.T) {
	lib := Builtins()
	for _, id := range []ID{Single, Glider, Blinker, Block, LWSS, RPentomino, Acorn, GosperGun} {
		p, ok := lib.Get(id)
		if !ok || len(p) == 0 {
			t.Fatalf("builtin %q missing", id)
		}
	}
	if p, _ := lib.Get(Glider); len(p) != 5 {
		t.Fatalf("glider has %d cells", len(p))
	}
	if p, _ := lib.Get(GosperGun); len(p) != 36 {
		t.Fatalf("gosper gun has %d cells, want 36", len(p))
	}
	if lib.IDs()[0] != Single {
		t.Fatalf("first builtin = %q", lib.IDs()[0])
	}
}

func TestLibraryNextWraps(t *testing.T) {
	lib := NewLibrary()
	lib.Register("a", Dot)
	lib.Register("b", Dot)
	lib.Register("c", Dot)
	lib.Register("a", Pattern{{1, 1}})

	if lib.Len() != 3 {
		t.Fatalf("len = %d, want 3", lib.Len())
	}
	if got := lib.Next("c", 1); got != "a" {
		t.Fatalf("Next(c,+1) = %q", got)
	}
	if got := lib.Next("a", -1); got != "c" {
		t.Fatalf("Next(a,-1) = %q", got)
	}
	if got := lib.Next("zzz", 1); got != "a" {
		t.Fatalf("Next(unknown) = %q", got)
	}
	if p, _ := lib.Get("a"); p[0] != (Point{1, 1}) {
		t.Fatal("re-registering did not replace the pattern")
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(1, 0, color.Black)
	img.Set(3, 1, color.RGBA{R: 200, A: 255})
	img.Set(0, 2, color.Black)
	img.Set(2, 2, color.RGBA{A: 0})
	return img
}

func TestDecodeSkipsBackground(t *testing.T) {
	got := Decode(testImage())
	want := Pattern{{1, 0}, {3, 1}, {0, 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecodeIsRelativeToImageOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(11, 21, color.Black)
	got := Decode(img)
	if !slices.Equal(got, Pattern{{1, 1}}) {
		t.Fatalf("got %v", got)
	}
}

func TestFitShrinksLargeImages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	out := Fit(img, 10)
	if b := out.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("fit to %v, want 10x5", b)
	}
	if Fit(img, 0) != image.Image(img) {
		t.Fatal("non-positive limit should return the input")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "sample.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary()
	if err := lib.LoadDir(context.Background(), dir, 64); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if lib.Len() != 1 {
		t.Fatalf("loaded %d patterns, want 1", lib.Len())
	}
	p, ok := lib.Get("sample")
	if !ok || len(p) != 3 {
		t.Fatalf("sample pattern = %v", p)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if err := NewLibrary().LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"), 0); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
