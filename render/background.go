package render

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/star-dodger/constants"
)

type scaledKey struct {
	index, w, h int
}

// Backgrounds holds the decoded level images, cropped, with a cache of
// cell-grid scaled copies
// Images that fail to load are kept as nil and skipped when drawing
type Backgrounds struct {
	images []image.Image
	scaled map[scaledKey]*image.RGBA
}

// LoadBackgrounds decodes files from dir
// Missing or undecodable files are logged and skipped
func LoadBackgrounds(dir string, files []string) *Backgrounds {
	b := &Backgrounds{
		images: make([]image.Image, len(files)),
		scaled: make(map[scaledKey]*image.RGBA),
	}
	if dir == "" {
		return b
	}

	loaded := 0
	for i, name := range files {
		img, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			log.Printf("background %s skipped: %v", name, err)
			continue
		}
		b.images[i] = cropImage(img, constants.BackgroundCrop)
		loaded++
	}
	log.Printf("backgrounds: loaded %d of %d from %s", loaded, len(files), dir)
	return b
}

// NewBackgrounds wraps already decoded images, cropping each
func NewBackgrounds(images []image.Image) *Backgrounds {
	b := &Backgrounds{
		images: make([]image.Image, len(images)),
		scaled: make(map[scaledKey]*image.RGBA),
	}
	for i, img := range images {
		if img != nil {
			b.images[i] = cropImage(img, constants.BackgroundCrop)
		}
	}
	return b
}

// Index returns the rotation slot for level
func (b *Backgrounds) Index(level int) int {
	n := len(b.images)
	if n == 0 {
		return -1
	}
	i := (level - 1) % n
	if i < 0 {
		i += n
	}
	return i
}

// ForLevel returns the cropped image for level, nil when absent
func (b *Backgrounds) ForLevel(level int) image.Image {
	i := b.Index(level)
	if i < 0 {
		return nil
	}
	return b.images[i]
}

// Scaled returns the level image resampled to w×h, nil when absent
func (b *Backgrounds) Scaled(level, w, h int) *image.RGBA {
	i := b.Index(level)
	if i < 0 || b.images[i] == nil || w <= 0 || h <= 0 {
		return nil
	}

	key := scaledKey{i, w, h}
	if img, ok := b.scaled[key]; ok {
		return img
	}

	src := b.images[i]
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	b.scaled[key] = dst
	return dst
}

// Loaded returns the number of usable images
func (b *Backgrounds) Loaded() int {
	n := 0
	for _, img := range b.images {
		if img != nil {
			n++
		}
	}
	return n
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cropImage trims n pixels from every side; images too small to crop are returned as-is
func cropImage(img image.Image, n int) image.Image {
	b := img.Bounds()
	if b.Dx() <= 2*n || b.Dy() <= 2*n {
		return img
	}
	r := image.Rect(b.Min.X+n, b.Min.Y+n, b.Max.X-n, b.Max.Y-n)
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Copy(dst, image.Point{}, img, r, xdraw.Src, nil)
	return dst
}
