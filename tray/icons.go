package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

var icons map[string][]byte

func init() {
	green := color.RGBA{R: 52, G: 199, B: 89, A: 255}
	red := color.RGBA{R: 255, G: 59, B: 48, A: 255}
	const size = 44
	dotR := size / 6.5
	icons = map[string][]byte{
		StateDisconnected: renderIcon(size, nil, 0),
		StateConnected:    renderIcon(size, &green, dotR),
		StateMuted:        renderMutedIcon(size, &red, dotR),
	}
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("encodePNG: " + err.Error())
	}
	return buf.Bytes()
}

func drawCircleIcon(img *image.RGBA, size int, dot *color.RGBA, dotR float64) {
	cx, cy := float64(size)/2, float64(size)/2
	r := float64(size)/2 - 1
	for y := range size {
		for x := range size {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if dot != nil && d <= dotR {
				img.Set(x, y, dot)
			} else if d <= r {
				img.Set(x, y, color.Black)
			}
		}
	}
}

func renderIcon(size int, dot *color.RGBA, dotR float64) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	drawCircleIcon(img, size, dot, dotR)
	return encodePNG(img)
}

// renderMutedIcon draws the dot with a diagonal strike through it.
func renderMutedIcon(size int, dot *color.RGBA, dotR float64) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	drawCircleIcon(img, size, dot, dotR)

	s := float64(size)
	halfW := s * 0.05
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := range size {
		for x := range size {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			// distance from the line y = x
			if math.Abs(fx-fy)/math.Sqrt2 <= halfW && math.Hypot(fx-s/2, fy-s/2) <= s/2-3 {
				img.Set(x, y, white)
			}
		}
	}
	return encodePNG(img)
}

// AppIcon returns the connected-state icon, used wherever the app needs a
// single image of itself.
func AppIcon() []byte {
	return icons[StateConnected]
}
