package screenshot

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the default framebuffer's back buffer as bottom-up
// RGBA rows. Call it after drawing and before swapping.
func ReadFramebuffer(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}
