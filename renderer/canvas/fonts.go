package canvasrenderer

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/slidemark/fonts"
	"github.com/ByLCY/slidemark/layout"
)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	styles map[canvas.FontStyle]bool
}

// fontFamily resolves a family list to the first family that loads.
// Generic names map to the built-in Go family, and so does a list with no
// usable family; that fallback is logged once per list.
func (r *Renderer) fontFamily(names []string) *fontFamilyEntry {
	key := strings.ToLower(strings.Join(names, ","))
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.fontFamilies[key]; ok {
		return entry
	}
	entry := r.resolveFamily(names)
	r.fontFamilies[key] = entry
	return entry
}

func (r *Renderer) resolveFamily(names []string) *fontFamilyEntry {
	for _, name := range names {
		lower := strings.ToLower(name)
		if files, ok := r.fontFiles[lower]; ok {
			entry, err := r.loadFamily(name, files)
			if err == nil {
				return entry
			}
			layout.Logger().Warn("canvas: 字体加载失败", "family", name, "error", err)
			continue
		}
		if fonts.IsGeneric(lower) || lower == strings.ToLower(fonts.Family) {
			return r.fallback()
		}
	}
	layout.Logger().Debug("canvas: 字体族未注册，使用内置字体", "families", names)
	return r.fallback()
}

func (r *Renderer) loadFamily(name string, files FontFiles) (*fontFamilyEntry, error) {
	family := canvas.NewFontFamily(name)
	entry := &fontFamilyEntry{family: family, styles: map[canvas.FontStyle]bool{}}
	variants := []struct {
		res   Resource
		style canvas.FontStyle
	}{
		{files.Regular, canvas.FontRegular},
		{files.Bold, canvas.FontBold},
		{files.Italic, canvas.FontItalic},
		{files.BoldItalic, canvas.FontBold | canvas.FontItalic},
	}
	for i, v := range variants {
		if len(v.res.Bytes) == 0 && v.res.Path == "" {
			if i == 0 {
				return nil, fmt.Errorf("字体 %s 缺少常规字重", name)
			}
			continue
		}
		data, err := r.loadFontBytes(v.res)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, v.style); err != nil {
			return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
		}
		entry.styles[v.style] = true
	}
	return entry, nil
}

func (r *Renderer) loadFontBytes(res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	if strings.HasPrefix(res.Path, "embed:") {
		return fonts.Load(res.Path)
	}
	path, err := r.resolvePath(res.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", res.Path, err)
	}
	return data, nil
}

// LoadFonts loads every registered family up front and reports the first
// one that fails, instead of falling back to the built-in fonts at draw time.
func (r *Renderer) LoadFonts() error {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	for name, files := range r.fontFiles {
		if _, ok := r.fontFamilies[name]; ok {
			continue
		}
		entry, err := r.loadFamily(name, files)
		if err != nil {
			return err
		}
		r.fontFamilies[name] = entry
	}
	return nil
}

// fallback returns the built-in Go family. Callers hold fontMu.
func (r *Renderer) fallback() *fontFamilyEntry {
	if r.fallbackFamily != nil {
		return r.fallbackFamily
	}
	entry, err := r.loadFamily(fonts.Family, FontFiles{
		Regular:    Resource{Bytes: fonts.Builtin(fonts.Regular)},
		Bold:       Resource{Bytes: fonts.Builtin(fonts.Bold)},
		Italic:     Resource{Bytes: fonts.Builtin(fonts.Italic)},
		BoldItalic: Resource{Bytes: fonts.Builtin(fonts.BoldItalic)},
	})
	if err != nil {
		panic(fmt.Sprintf("canvasrenderer: 内置字体加载失败: %v", err))
	}
	r.fallbackFamily = entry
	return entry
}
