package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/slidemark/layout"
	"github.com/ByLCY/slidemark/renderer"
	"github.com/ByLCY/slidemark/slide"
)

// Renderer draws frames via github.com/tdewolff/canvas. One canvas unit is
// one pixel: PNG output rasterizes at one dot per unit.
type Renderer struct {
	baseDir string

	// injected resources
	fontFiles  map[string]FontFiles // by lower-case family name
	imageBlobs map[string][]byte    // by unique name

	fontMu         sync.Mutex
	fontFamilies   map[string]*fontFamilyEntry
	fallbackFamily *fontFamilyEntry
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ renderer.Carousel = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	BaseDir string
	Fonts   map[string]FontFiles // font families by name, used by font descriptors
	Images  map[string]Resource  // built-in images accessible via built-in:<name>
}

// FontFiles are the variants of one family. Only Regular is required.
type FontFiles struct {
	Regular    Resource
	Bold       Resource
	Italic     Resource
	BoldItalic Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a canvas-based renderer rooted at baseDir for resolving assets.
func NewRenderer(baseDir string) *Renderer { return NewRendererWithOptions(Options{BaseDir: baseDir}) }

// NewRendererWithOptions creates a renderer with injected resources and optional baseDir.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		baseDir:      opts.BaseDir,
		fontFiles:    map[string]FontFiles{},
		imageBlobs:   map[string][]byte{},
		fontFamilies: map[string]*fontFamilyEntry{},
	}
	for name, files := range opts.Fonts {
		if name = strings.TrimSpace(name); name != "" {
			r.fontFiles[strings.ToLower(name)] = files
		}
	}
	for name, res := range opts.Images {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			r.imageBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, _ := os.ReadFile(res.Path) // 读取失败时按缺失处理，在使用时报错
			if len(data) > 0 {
				r.imageBlobs[name] = data
			}
		}
	}
	return r
}

// Render rasterizes one frame into a PNG.
func (r *Renderer) Render(frame *slide.Frame) ([]byte, error) {
	if frame == nil {
		return nil, fmt.Errorf("渲染帧为空")
	}
	c, err := r.draw(frame)
	if err != nil {
		return nil, err
	}
	img := rasterizer.Draw(c, canvas.DPMM(1), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCarousel writes all frames as the pages of one PDF.
func (r *Renderer) RenderCarousel(frames []slide.Frame, meta slide.Meta) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("缺少可渲染的帧")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, frames[0].Width, frames[0].Height, nil)
	writer.SetInfo(meta.Title, meta.Subject, strings.Join(meta.Keywords, ", "), meta.Author, meta.Creator)
	for i := range frames {
		if i > 0 {
			writer.NewPage(frames[i].Width, frames[i].Height)
		}
		c, err := r.draw(&frames[i])
		if err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// draw paints the background and then the text of frame.
func (r *Renderer) draw(frame *slide.Frame) (*canvas.Canvas, error) {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("帧 %d 尺寸无效 %gx%g", frame.Index+1, frame.Width, frame.Height)
	}
	c := canvas.New(frame.Width, frame.Height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	if frame.Background != "" {
		bg, err := parseColor(frame.Background)
		if err != nil {
			return nil, fmt.Errorf("帧 %d 背景色: %w", frame.Index+1, err)
		}
		ctx.SetFillColor(withAlpha(bg, 1))
		ctx.SetStrokeColor(transparent)
		ctx.DrawPath(0, 0, canvas.Rectangle(frame.Width, frame.Height))
	}
	if frame.Image != "" {
		if err := r.drawCover(ctx, frame); err != nil {
			return nil, err
		}
	}

	slide.Draw(r.newSurface(ctx), *frame)
	return c, nil
}

// drawCover scales the background image to cover the frame, centred.
func (r *Renderer) drawCover(ctx *canvas.Context, frame *slide.Frame) error {
	img, err := r.loadImage(frame.Image)
	if err != nil {
		return err
	}
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if iw <= 0 || ih <= 0 {
		return fmt.Errorf("图片 %s 尺寸为空", frame.Image)
	}
	scale := max(frame.Width/iw, frame.Height/ih)
	x := (frame.Width - iw*scale) / 2
	y := (frame.Height - ih*scale) / 2
	ctx.DrawImage(x, y, img, canvas.DPMM(1/scale))
	return nil
}

func (r *Renderer) loadImage(orig string) (image.Image, error) {
	if name, ok := builtinName(orig); ok {
		blob, found := r.imageBlobs[name]
		if !found {
			return nil, fmt.Errorf("找不到内置图片资源 built-in:%s", name)
		}
		img, _, err := image.Decode(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("解码内置图片 built-in:%s 失败: %w", name, err)
		}
		return img, nil
	}
	path, err := r.resolvePath(orig)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("读取图片 %s 失败: %w", orig, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", orig, err)
	}
	return img, nil
}

func (r *Renderer) resolvePath(orig string) (string, error) {
	if r.baseDir == "" && !filepath.IsAbs(orig) {
		return "", fmt.Errorf("未指定资源目录时不允许直接使用路径：%s（请改用 built-in:）", orig)
	}
	if filepath.IsAbs(orig) {
		return orig, nil
	}
	return filepath.Join(r.baseDir, orig), nil
}

func builtinName(src string) (string, bool) {
	for _, prefix := range []string{"built-in:", "builtin:"} {
		if name, ok := strings.CutPrefix(src, prefix); ok {
			return name, true
		}
	}
	return "", false
}

// Metrics returns a measuring-only surface backed by the same fonts the
// renderer draws with. Each goroutine should use its own.
func (r *Renderer) Metrics() layout.Metrics {
	return r.newSurface(nil)
}
