package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBackgroundsRotation(t *testing.T) {
	images := make([]image.Image, 14)
	b := NewBackgrounds(images)

	tests := []struct {
		level int
		index int
	}{
		{1, 0}, {2, 1}, {14, 13}, {15, 0}, {29, 0}, {30, 1},
	}
	for _, tt := range tests {
		if got := b.Index(tt.level); got != tt.index {
			t.Errorf("Index(%d) = %d, want %d", tt.level, got, tt.index)
		}
	}

	if got := NewBackgrounds(nil).Index(3); got != -1 {
		t.Errorf("Empty set should yield -1, got %d", got)
	}
}

func TestBackgroundsCrop(t *testing.T) {
	b := NewBackgrounds([]image.Image{solidImage(100, 60, color.White)})

	img := b.ForLevel(1)
	if img == nil {
		t.Fatal("Expected image for level 1")
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 40 {
		t.Errorf("Expected 80x40 after 10px crop, got %v", img.Bounds())
	}

	// Too small to crop is kept whole
	tiny := NewBackgrounds([]image.Image{solidImage(15, 15, color.White)})
	if tiny.ForLevel(1).Bounds().Dx() != 15 {
		t.Error("Expected tiny image to stay uncropped")
	}
}

func TestBackgroundsScaledCache(t *testing.T) {
	red := color.RGBA{R: 200, A: 255}
	b := NewBackgrounds([]image.Image{solidImage(200, 120, red), nil})

	s1 := b.Scaled(1, 40, 12)
	if s1 == nil {
		t.Fatal("Expected scaled image")
	}
	if s1.Bounds().Dx() != 40 || s1.Bounds().Dy() != 12 {
		t.Errorf("Expected 40x12, got %v", s1.Bounds())
	}
	if r, _, _, _ := s1.At(20, 6).RGBA(); r>>8 != 200 {
		t.Errorf("Expected red channel 200, got %d", r>>8)
	}
	if s2 := b.Scaled(1, 40, 12); s2 != s1 {
		t.Error("Expected cached scaled image")
	}

	// Level 2 slot failed to load
	if b.Scaled(2, 40, 12) != nil {
		t.Error("Expected nil for missing image")
	}
	if b.Loaded() != 1 {
		t.Errorf("Expected 1 loaded image, got %d", b.Loaded())
	}
}

func TestLoadBackgroundsSkipsMissing(t *testing.T) {
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "bg1.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(64, 64, color.White)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := os.WriteFile(filepath.Join(dir, "bg3.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := LoadBackgrounds(dir, []string{"bg1.png", "bg2.png", "bg3.png"})
	if b.Loaded() != 1 {
		t.Errorf("Expected 1 decodable image, got %d", b.Loaded())
	}
	if b.ForLevel(1) == nil {
		t.Error("Expected level 1 image")
	}
	if b.ForLevel(2) != nil || b.ForLevel(3) != nil {
		t.Error("Expected missing and corrupt images to be skipped")
	}

	if LoadBackgrounds("", []string{"bg1.png"}).Loaded() != 0 {
		t.Error("Expected empty dir to load nothing")
	}
}
