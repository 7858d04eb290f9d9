package render

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// saveScreenshot reads back the current framebuffer and writes it as a
// WebP image in the working directory. GL returns rows bottom-up, so
// the pixel rows are flipped before encoding.
func (r *Renderer) saveScreenshot() error {
	width, height := r.window.Size()

	pixels := make([]uint8, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		dst := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		copy(dst, src)
	}

	name := fmt.Sprintf("screenshot_%d.webp", time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	fmt.Printf("Saved %s\n", name)
	return nil
}
