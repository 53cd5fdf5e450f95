package asset

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/h2non/filetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Texture size caps; terminal cells never resolve more detail than this
const (
	MaxTextureWidth  = 256
	MaxTextureHeight = 128
)

// Texture is a downsampled, row-major color grid sampled with repeat wrapping
type Texture struct {
	Width, Height int
	Pix           []colorful.Color
}

// Sample returns the texel at (u, v), both wrapped into [0, 1)
func (t *Texture) Sample(u, v float64) colorful.Color {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return colorful.Color{R: 1, G: 0, B: 1}
	}
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pix[y*t.Width+x]
}

// DecodeTexture decodes a png/jpeg image and downsamples it to fit the size caps
func DecodeTexture(data []byte) (*Texture, error) {
	if !filetype.IsImage(data) {
		return nil, ErrUnknownFormat
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode image: empty bounds %v", b)
	}
	if w > MaxTextureWidth {
		h = max(1, h*MaxTextureWidth/w)
		w = MaxTextureWidth
	}
	if h > MaxTextureHeight {
		w = max(1, w*MaxTextureHeight/h)
		h = MaxTextureHeight
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	tex := &Texture{Width: w, Height: h, Pix: make([]colorful.Color, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := colorful.MakeColor(dst.At(x, y))
			tex.Pix[y*w+x] = c
		}
	}
	return tex, nil
}

// PlaceholderTexture builds a banded procedural texture around base
// The pattern is seeded from key so each body keeps a stable look
func PlaceholderTexture(key string, base colorful.Color) *Texture {
	const w, h = 64, 32

	hs := fnv.New64a()
	hs.Write([]byte(key))
	seed := hs.Sum64()

	dark := base.BlendLab(colorful.Color{}, 0.45).Clamped()
	light := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.25).Clamped()
	bands := 3 + float64(seed%5)
	phase := float64(seed>>8%628) / 100

	tex := &Texture{Width: w, Height: h, Pix: make([]colorful.Color, w*h)}
	for y := 0; y < h; y++ {
		v := float64(y) / h
		for x := 0; x < w; x++ {
			u := float64(x) / w
			band := 0.5 + 0.5*math.Sin(v*bands*2*math.Pi+phase+0.6*math.Sin(u*4*math.Pi))
			c := dark.BlendLab(light, band)
			// Speckle from a cheap integer hash keeps flat areas from banding in 256-color mode
			n := hashNoise(seed, x, y)
			tex.Pix[y*w+x] = c.BlendRgb(base, n*0.3).Clamped()
		}
	}
	return tex
}

// StarfieldTexture is the skybox placeholder: near-black with sparse stars
func StarfieldTexture() *Texture {
	const w, h = 128, 64
	tex := &Texture{Width: w, Height: h, Pix: make([]colorful.Color, w*h)}
	space := colorful.Color{R: 0.02, G: 0.02, B: 0.06}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := hashNoise(0x5eed, x, y)
			c := space
			if n > 0.985 {
				c = colorful.Color{R: 0.9, G: 0.9, B: 1}
			} else if n > 0.96 {
				c = colorful.Color{R: 0.35, G: 0.35, B: 0.5}
			}
			tex.Pix[y*w+x] = c
		}
	}
	return tex
}

// hashNoise returns a deterministic value in [0, 1) for a grid cell
func hashNoise(seed uint64, x, y int) float64 {
	h := seed ^ uint64(x)*0x9e3779b97f4a7c15 ^ uint64(y)*0xc2b2ae3d27d4eb4f
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return float64(h>>11) / float64(1<<53)
}
