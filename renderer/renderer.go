package renderer

import "github.com/ByLCY/slidemark/slide"

// Renderer 将排版好的单帧编码为最终文件，例如 PNG 图像。
type Renderer interface {
	Render(frame *slide.Frame) ([]byte, error)
}

// Carousel 将多帧输出为单个多页文档，例如 PDF 轮播。
type Carousel interface {
	RenderCarousel(frames []slide.Frame, meta slide.Meta) ([]byte, error)
}
