package hal

import "image"

// RGB565 packs an 8-bit per channel color.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// Snapshot converts an RGB565 framebuffer into an RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	src := fb.Buffer()
	if hf, ok := fb.(*hostFramebuffer); ok {
		src = make([]byte, len(hf.buf))
		hf.snapshotRGB565(src)
	}
	expand565(img.Pix, src, fb.Width(), fb.Height(), fb.StrideBytes())
	return img
}

func expand565(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := src[y*stride:]
		out := dst[y*w*4:]
		for x := 0; x < w; x++ {
			if 2*x+1 >= len(row) {
				break
			}
			r, g, b := rgb888From565(uint16(row[2*x]) | uint16(row[2*x+1])<<8)
			out[4*x+0] = r
			out[4*x+1] = g
			out[4*x+2] = b
			out[4*x+3] = 0xFF
		}
	}
}
