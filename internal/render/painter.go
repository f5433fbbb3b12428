//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell colors into a w*h image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit uploads the colors of src and draws them onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, src Source, scale int) {
	size := src.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	fillOpaqueRGBA(gp.buf, src)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, gp.img, scale)
}

// BlitMask draws an intensity mask tinted by tint on top of dst.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []float32, tint color.NRGBA, scale int) {
	if len(mask) != gp.w*gp.h {
		return
	}
	if gp.maskImg == nil {
		gp.maskImg = ebiten.NewImage(gp.w, gp.h)
		gp.maskBuf = make([]byte, 4*gp.w*gp.h)
	}
	fillMaskRGBA(gp.maskBuf, mask, tint)
	gp.maskImg.WritePixels(gp.maskBuf)
	gp.draw(dst, gp.maskImg, scale)
}

func (gp *GridPainter) draw(dst, img *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
