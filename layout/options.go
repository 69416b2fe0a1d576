package layout

import "image"

// Measurer 负责测量一段文本在给定字号（pt）下的排版宽度（mm），由渲染后端实现。
type Measurer interface {
	TextWidth(text string, fontSizePt float64) float64
}

// QREncoder 将二维码载荷编码为 sizePx×sizePx 的位图。
type QREncoder interface {
	Encode(content string, sizePx int) (image.Image, error)
}

// AssembleOptions 配置装配阶段所需的依赖。
type AssembleOptions struct {
	Measurer Measurer
	Encoder  QREncoder
}
