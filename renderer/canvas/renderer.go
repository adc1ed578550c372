package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/exhibit/fonts"
	"github.com/ByLCY/exhibit/layout"
	"github.com/ByLCY/exhibit/renderer"
)

// Renderer draws frames via github.com/tdewolff/canvas at one pixel per
// millimetre and encodes them as PNG.
type Renderer struct {
	fontSrc string

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink        = color.RGBA{A: 0xff}
)

// NewRenderer creates a renderer using the font at fontSrc, which is either a
// file path or fonts.Builtin. The font is loaded on first use or by Preload.
func NewRenderer(fontSrc string) *Renderer { return &Renderer{fontSrc: fontSrc} }

// Preload loads the font now so a missing or broken font fails at startup.
func (r *Renderer) Preload() error {
	_, err := r.fontFamily()
	return err
}

// Render rasterizes the frame and encodes it as PNG.
func (r *Renderer) Render(frame layout.Frame) ([]byte, error) {
	img, err := r.Rasterize(frame)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// Rasterize draws the frame onto a white bitmap: every rune sits in its own
// grid cell, then the border is drawn on top.
func (r *Renderer) Rasterize(frame layout.Frame) (*image.RGBA, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %dx%d", frame.Width, frame.Height)
	}
	face, err := r.face(frame.Metrics)
	if err != nil {
		return nil, err
	}

	c := canvas.New(float64(frame.Width), float64(frame.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	drawLines(ctx, face, frame)
	glyphs := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)

	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(img, img.Bounds(), glyphs, glyphs.Bounds().Min, draw.Over)
	drawBorder(img, frame.Border)
	return img, nil
}

// Advance reports the font's horizontal advance at the frame font size, in
// pixels. A monospace font matching the grid returns m.CharWidth.
func (r *Renderer) Advance(m layout.Metrics) (float64, error) {
	face, err := r.face(m)
	if err != nil {
		return 0, err
	}
	return face.TextWidth("M"), nil
}

// drawLines places each rune at the left edge of its grid cell so the text
// follows the character grid regardless of the font's own advances.
func drawLines(ctx *canvas.Context, face *canvas.FontFace, frame layout.Frame) {
	ascent := face.Metrics().Ascent
	for _, line := range frame.Lines {
		baseline := float64(line.Y) + ascent
		col := 0
		for _, ch := range line.Content {
			if !unicode.IsSpace(ch) {
				x := float64(line.X + col*frame.Metrics.CharWidth)
				ctx.DrawText(x, baseline, canvas.NewTextLine(face, string(ch), canvas.Left))
			}
			col++
		}
	}
}

// drawBorder reproduces a width-px rectangle outline spanning (0,0)-(w,h)
// inclusive: its right and bottom strokes fall partly outside the bitmap and
// show one pixel thinner. The two correction lines at x=w−width and
// y=h−width restore equal strokes on all four sides.
func drawBorder(img *image.RGBA, width int) {
	if width <= 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	src := image.NewUniform(ink)
	fill := func(rc image.Rectangle) {
		draw.Draw(img, rc.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}

	fill(image.Rect(0, 0, width, h))         // left
	fill(image.Rect(0, 0, w, width))         // top
	fill(image.Rect(w-width+1, 0, w+1, h+1)) // right, clipped
	fill(image.Rect(0, h-width+1, w+1, h+1)) // bottom, clipped

	fill(image.Rect(1, h-width, w, h-width+1)) // y = h−width, x ∈ [1, w−1]
	fill(image.Rect(w-width, 1, w-width+1, h)) // x = w−width, y ∈ [1, h−1]
}

func (r *Renderer) face(m layout.Metrics) (*canvas.FontFace, error) {
	family, err := r.fontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(m.FontSizePt(), canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) fontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	data, err := fonts.Load(r.fontSrc)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("exhibit-mono")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", r.fontSrc, err)
	}
	r.family = family
	return family, nil
}
