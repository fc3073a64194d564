// Package fonts 提供内置的 Go 字体族、字体描述符解析以及基于
// golang.org/x/image/font/opentype 的无头文本度量。
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family 是内置字体族的名称。
const Family = "Go"

// Style 是字体族中的一个变体。
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
)

// StyleOf 将 (bold, italic) 组合映射为变体。
func StyleOf(bold, italic bool) Style {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// Bold reports whether the style is a bold variant.
func (s Style) Bold() bool { return s == Bold || s == BoldItalic }

// Italic reports whether the style is an italic variant.
func (s Style) Italic() bool { return s == Italic || s == BoldItalic }

// String returns the variant suffix used in built-in file names.
func (s Style) String() string {
	switch s {
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	default:
		return "Regular"
	}
}

var builtin = map[string][]byte{
	"Go-Regular.ttf":    goregular.TTF,
	"Go-Bold.ttf":       gobold.TTF,
	"Go-Italic.ttf":     goitalic.TTF,
	"Go-BoldItalic.ttf": gobolditalic.TTF,
}

// Builtin 返回内置字体族中某个变体的 TTF 数据。
func Builtin(style Style) []byte {
	return builtin[Family+"-"+style.String()+".ttf"]
}

// Load 返回内置字体的字节数据，path 可写为 "embed:Go-Bold.ttf" 或直接 "Go-Bold.ttf"。
func Load(path string) ([]byte, error) {
	name := strings.TrimPrefix(strings.TrimSpace(path), "embed:")
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 不存在", name)
	}
	return data, nil
}
