package layout

import (
	"image"
	"math"

	"github.com/ByLCY/labelkit/catalog"
	"github.com/ByLCY/labelkit/label"
)

// 布局引擎是一棵每页只评估一次的决策树：先由长宽比与绝对宽度选定二维码
// 放置策略，再在剩余文字区域内自上而下放置各字段，纵向空间耗尽即停。

const (
	// pageMarginMM 四边固定页边距，作用于所有布局分支。
	pageMarginMM = 2.0
	// qrGutterMM 二维码与文字区域之间的间隔。
	qrGutterMM = 2.0
	// narrowWidthMM 窄标签（连续带）阈值；窄判定优先于宽判定。
	narrowWidthMM = 30.0
	// narrowQRMaxMM 窄标签上二维码的最大边长。
	narrowQRMaxMM = 10.0
	// wideAspect 宽 ≥ 高×2 时视为宽标签。
	wideAspect = 2.0
	// smallBaseMM min(宽,高) 低于该值时基准字号从 8pt 降为 6pt。
	smallBaseMM = 30.0
	// smallGapMM 字段之间的额外纵向间距。
	smallGapMM = 1.0
)

// Strategy 是二维码的三种放置策略。
type Strategy int

const (
	StrategySquare Strategy = iota
	StrategyWide
	StrategyNarrow
)

func (s Strategy) String() string {
	switch s {
	case StrategyWide:
		return "wide"
	case StrategyNarrow:
		return "narrow"
	default:
		return "square"
	}
}

// ChooseStrategy 由 (宽, 高) 纯函数地决定放置策略。
func ChooseStrategy(size catalog.Size) Strategy {
	if size.WidthMM < narrowWidthMM {
		return StrategyNarrow
	}
	if size.WidthMM >= size.HeightMM*wideAspect {
		return StrategyWide
	}
	return StrategySquare
}

// QRSideMM 返回该规格下二维码方块的边长（mm）。装配阶段据此按
// 4×边长的像素数预先栅格化，保证打印清晰度。
func QRSideMM(size catalog.Size) float64 {
	w, h := size.WidthMM, size.HeightMM
	switch ChooseStrategy(size) {
	case StrategyNarrow:
		return math.Min(narrowQRMaxMM, w-2*pageMarginMM)
	case StrategyWide:
		sizeForQR := math.Min(w, h) - 2*pageMarginMM
		return math.Min(sizeForQR, h-2*pageMarginMM)
	default:
		return math.Min(h-2*pageMarginMM, w*0.4)
	}
}

// Layout 把一条标签数据排到一页上。qrImg 为预先编码好的位图，
// opts.ShowQRCode 关闭时忽略。本函数无 I/O、无隐藏状态，
// 相同输入产生逐字节相同的结果。
func Layout(item label.Data, opts label.PrintOptions, qrImg image.Image, m Measurer) PageContent {
	size := opts.Size
	w, h := size.WidthMM, size.HeightMM
	page := PageContent{Width: w, Height: h, Margin: pageMarginMM}

	base := 8.0
	if math.Min(w, h) < smallBaseMM {
		base = 6.0
	}
	titleCap := 2
	if h < smallBaseMM {
		titleCap = 1
	}

	textX := pageMarginMM
	textW := w - 2*pageMarginMM
	cursor := pageMarginMM

	if opts.ShowQRCode {
		side := QRSideMM(size)
		switch ChooseStrategy(size) {
		case StrategyNarrow:
			// 窄标签：二维码置顶居中，文字整体移到其下方，占满整行宽度。
			page.Image = &ImageBox{Image: qrImg, X: (w - side) / 2, Y: pageMarginMM, Width: side, Height: side}
			cursor = pageMarginMM + side + qrGutterMM
		default:
			// 宽与方形标签：二维码靠左，文字区域从其右侧加间隔开始。
			page.Image = &ImageBox{Image: qrImg, X: pageMarginMM, Y: pageMarginMM, Width: side, Height: side}
			textX = pageMarginMM + side + qrGutterMM
			textW = w - textX - pageMarginMM
		}
	}

	f := fieldWriter{page: &page, m: m, x: textX, width: textW, cursor: cursor, bottom: h - pageMarginMM}
	f.wrapped(item.Name, base+2, titleCap, true)
	if opts.ShowLocation && item.Location != "" {
		f.line(item.Location, base-1)
	}
	if opts.ShowCategory && item.Category != "" {
		f.line(item.Category, base-1)
	}
	if opts.ShowDescription && item.Description != "" {
		f.fill(item.Description, base-1)
	}
	return page
}

// lineAdvance 单行行距（mm）：字号（pt）×0.5。
func lineAdvance(fontSize float64) float64 { return fontSize * 0.5 }

// fieldWriter 沿文字区域自上而下放置字段。起始位置已越过下边距的字段整体
// 跳过；放置后游标前进 行数×行距 + smallGapMM。
type fieldWriter struct {
	page   *PageContent
	m      Measurer
	x      float64
	width  float64
	cursor float64
	bottom float64
}

func (f *fieldWriter) widthOf(fontSize float64) func(string) float64 {
	return func(s string) float64 { return f.m.TextWidth(s, fontSize) }
}

// wrapped 放置折行字段，最多 maxLines 行；被丢弃的溢出行不带省略号
//（保留原始行为，见 DESIGN.md）。
func (f *fieldWriter) wrapped(text string, fontSize float64, maxLines int, bold bool) {
	if f.skipped() {
		return
	}
	lines := WrapToLines(text, f.width, f.widthOf(fontSize))
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	f.place(lines, fontSize, bold)
}

// line 放置单行字段，超宽时截断补省略号。
func (f *fieldWriter) line(text string, fontSize float64) {
	if f.skipped() {
		return
	}
	f.place([]string{TruncateToWidth(text, f.width, f.widthOf(fontSize))}, fontSize, false)
}

// fill 用折行文本填满剩余纵向空间；一行都放不下时什么都不画。
func (f *fieldWriter) fill(text string, fontSize float64) {
	if f.skipped() {
		return
	}
	budget := int((f.bottom - f.cursor) / lineAdvance(fontSize))
	if budget <= 0 {
		return
	}
	lines := WrapToLines(text, f.width, f.widthOf(fontSize))
	if len(lines) > budget {
		lines = lines[:budget]
	}
	f.place(lines, fontSize, false)
}

func (f *fieldWriter) skipped() bool { return f.cursor > f.bottom }

func (f *fieldWriter) place(lines []string, fontSize float64, bold bool) {
	if len(lines) == 0 {
		return
	}
	for i, ln := range lines {
		f.page.Texts = append(f.page.Texts, TextBox{
			Content:  ln,
			X:        f.x,
			Y:        f.cursor + float64(i)*lineAdvance(fontSize),
			Width:    f.width,
			FontSize: fontSize,
			Bold:     bold,
		})
	}
	f.cursor += float64(len(lines))*lineAdvance(fontSize) + smallGapMM
}
