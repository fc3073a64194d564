package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/slidemark/dsl"
	"github.com/ByLCY/slidemark/layout"
	"github.com/ByLCY/slidemark/renderer"
	canvasrenderer "github.com/ByLCY/slidemark/renderer/canvas"
	"github.com/ByLCY/slidemark/slide"
)

// config 汇总命令行参数。
type config struct {
	input   string
	output  string
	format  string
	debug   string
	data    any
	workers int
}

// backend 同时提供单帧渲染、多页输出与排版用的字体度量。
type backend interface {
	renderer.Renderer
	renderer.Carousel
	Metrics() layout.Metrics
}

func main() {
	input := flag.String("in", "examples/launch.deck", "deck 文件路径")
	output := flag.String("out", "output", "输出路径：png 时为目录，pdf 时为文件")
	format := flag.String("format", "png", "输出格式：png 或 pdf")
	debug := flag.String("debug", "", "排版调试 JSON 输出路径")
	dataJSON := flag.String("data", "", "绑定到 deck 的 JSON 数据")
	fontDir := flag.String("fonts", "", "自定义字体目录，文件名形如 Family-Bold.ttf")
	workers := flag.Int("workers", runtime.NumCPU(), "并行渲染 PNG 的数量")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	if *verbose {
		layout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	fontFiles, err := scanFonts(*fontDir)
	if err != nil {
		log.Fatalf("加载字体目录失败: %v", err)
	}
	rendererOpts := canvasrenderer.Options{
		BaseDir: filepath.Dir(*input),
		Fonts:   fontFiles,
	}
	if err := canvasrenderer.NewRendererWithOptions(rendererOpts).LoadFonts(); err != nil {
		log.Fatalf("加载字体失败: %v", err)
	}
	newBackend := func() backend {
		return canvasrenderer.NewRendererWithOptions(rendererOpts)
	}

	cfg := config{
		input:   *input,
		output:  *output,
		format:  strings.ToLower(*format),
		debug:   *debug,
		data:    inputData,
		workers: *workers,
	}
	written, err := run(context.Background(), cfg, newBackend)
	if err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	for _, path := range written {
		fmt.Printf("已生成：%s\n", path)
	}
}

// run 串联解析、数据绑定、排版与渲染，返回写出的文件。
// newBackend 每次调用返回独立的渲染器，字体缓存不跨 goroutine 共享。
func run(ctx context.Context, cfg config, newBackend func() backend) ([]string, error) {
	if newBackend == nil {
		return nil, fmt.Errorf("renderer 不能为空")
	}
	file, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("无法打开 deck 文件 %s: %w", cfg.input, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析 deck 失败: %w", err)
	}
	deck, err := slide.Decode(doc, cfg.data)
	if err != nil {
		return nil, fmt.Errorf("读取 deck 失败: %w", err)
	}

	var (
		frames  []slide.Frame
		written []string
	)
	switch cfg.format {
	case "png", "":
		frames, written, err = renderPNGs(ctx, cfg, deck, newBackend)
	case "pdf":
		frames, written, err = renderPDF(cfg, deck, newBackend())
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q（可选 png、pdf）", cfg.format)
	}
	if err != nil {
		return nil, err
	}

	if cfg.debug != "" {
		if err := writeDebug(frames, cfg.debug); err != nil {
			return nil, err
		}
	}
	return written, nil
}

// renderPNGs 为每张 slide 单独排版并渲染，slide 之间相互独立，按 workers 并行。
func renderPNGs(ctx context.Context, cfg config, deck *slide.Deck, newBackend func() backend) ([]slide.Frame, []string, error) {
	if err := os.MkdirAll(cfg.output, 0o755); err != nil {
		return nil, nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	frames := make([]slide.Frame, len(deck.Slides))
	paths := make([]string, len(deck.Slides))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	for i, s := range deck.Slides {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := newBackend()
			opts := append(append([]slide.Option(nil), deck.Options...), slide.WithMetrics(r.Metrics()))
			frame, err := slide.Build(s, opts...)
			if err != nil {
				return fmt.Errorf("排版失败: %w", err)
			}
			data, err := r.Render(&frame)
			if err != nil {
				return fmt.Errorf("渲染 slide %d 失败: %w", i+1, err)
			}
			path := filepath.Join(cfg.output, fmt.Sprintf("%s-%02d.png", fileStem(deck.Name), i+1))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("写入 PNG 文件失败: %w", err)
			}
			frames[i], paths[i] = frame, path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return frames, paths, nil
}

func renderPDF(cfg config, deck *slide.Deck, r backend) ([]slide.Frame, []string, error) {
	frames, err := deck.Build(slide.WithMetrics(r.Metrics()))
	if err != nil {
		return nil, nil, fmt.Errorf("排版失败: %w", err)
	}
	data, err := r.RenderCarousel(frames, deck.Meta)
	if err != nil {
		return nil, nil, fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(cfg.output, data, 0o644); err != nil {
		return nil, nil, fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return frames, []string{cfg.output}, nil
}

func writeDebug(frames []slide.Frame, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := slide.WriteDebugJSON(frames, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// scanFonts 读取目录中的 .ttf/.otf 文件，按 "Family-Variant" 命名归组。
// 没有后缀的文件视为该族的常规字重。路径均为绝对路径，不受渲染器 BaseDir 影响。
func scanFonts(dir string) (map[string]canvasrenderer.FontFiles, error) {
	if dir == "" {
		return nil, nil
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := map[string]canvasrenderer.FontFiles{}
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		family, variant := stem, "regular"
		if i := strings.LastIndexByte(stem, '-'); i > 0 {
			family, variant = stem[:i], strings.ToLower(stem[i+1:])
		}
		res := canvasrenderer.Resource{Path: filepath.Join(dir, e.Name())}
		files := out[family]
		switch variant {
		case "regular":
			files.Regular = res
		case "bold":
			files.Bold = res
		case "italic":
			files.Italic = res
		case "bolditalic":
			files.BoldItalic = res
		default:
			// 未识别的后缀视为整个文件名即族名
			f := out[stem]
			f.Regular = res
			out[stem] = f
			continue
		}
		out[family] = files
	}
	return out, nil
}

func fileStem(name string) string {
	if name == "" {
		return "slide"
	}
	return strings.ToLower(name)
}
