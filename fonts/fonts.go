// Package fonts 提供渲染器使用的内置字体族（Go 字体，常规与粗体）。
package fonts

import (
	"fmt"
	"sync"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	once    sync.Once
	family  *canvas.FontFamily
	loadErr error
)

// Family 返回共享的内置字体族，首次调用时加载。
func Family() (*canvas.FontFamily, error) {
	once.Do(func() {
		fam := canvas.NewFontFamily("Go")
		if err := fam.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			loadErr = fmt.Errorf("加载内置常规字体失败: %w", err)
			return
		}
		if err := fam.LoadFont(gobold.TTF, 0, canvas.FontBold); err != nil {
			loadErr = fmt.Errorf("加载内置粗体失败: %w", err)
			return
		}
		family = fam
	})
	return family, loadErr
}
