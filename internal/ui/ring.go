package ui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// 进度环颜色
var (
	ringColor  = color.NRGBA{R: 255, G: 64, B: 129, A: 255}
	trackColor = color.NRGBA{R: 200, G: 200, B: 200, A: 100}
)

// progressRing 用像素画出的圆环进度条，每 60 秒转满一圈
// Fyne 没有圆弧图元，所以直接在 Raster 上算
type progressRing struct {
	raster *canvas.Raster

	mu       sync.Mutex
	progress float64 // 0~1
}

func newProgressRing() *progressRing {
	r := &progressRing{}
	r.raster = canvas.NewRaster(r.draw)
	r.raster.SetMinSize(fyne.NewSize(220, 220))
	return r
}

func (r *progressRing) Object() fyne.CanvasObject {
	return r.raster
}

// SetProgress 更新进度并重绘，入参限制在 0~1
func (r *progressRing) SetProgress(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	r.mu.Lock()
	changed := p != r.progress
	r.progress = p
	r.mu.Unlock()

	if changed {
		r.raster.Refresh()
	}
}

func (r *progressRing) draw(w, h int) image.Image {
	r.mu.Lock()
	progress := r.progress
	r.mu.Unlock()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	outer := math.Min(cx, cy) - 2
	inner := outer - 10
	if inner <= 0 {
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Hypot(dx, dy)
			if dist > outer || dist < inner {
				continue
			}

			// 从正上方起顺时针的角度，归一化到 0~1
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle/(2*math.Pi) <= progress {
				img.SetNRGBA(x, y, ringColor)
			} else {
				img.SetNRGBA(x, y, trackColor)
			}
		}
	}
	return img
}
