package layout

import "image"

// 该文件定义单页标签的布局结果，供布局计算、渲染与调试 JSON 共用。

// PageContent 记录一页标签的尺寸与可以直接渲染的元素。
// 坐标系以页面左上角为原点，单位均为毫米（mm）。
type PageContent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
	// 二维码位图，最多一个；nil 表示本页不渲染二维码。
	Image *ImageBox `json:"image,omitempty"`
	// 文本行，按渲染顺序排列。
	Texts []TextBox `json:"texts"`
}

// ImageBox 描述二维码位图的位置与尺寸。位图本身不进入调试 JSON。
type ImageBox struct {
	Image  image.Image `json:"-"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
}

// TextBox 表示一行已经排好坐标的文本。坐标与 Width 为 mm，FontSize 为 pt。
type TextBox struct {
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	FontSize float64 `json:"fontSize"`
	Bold     bool    `json:"bold,omitempty"`
}

// Document 是一次打印任务的全部页面。页面尺寸由任务级规格固定一次，
// 所有页面共享；不支持在同一任务中混用不同物理规格。
type Document struct {
	PageWidth  float64       `json:"pageWidth"`
	PageHeight float64       `json:"pageHeight"`
	Pages      []PageContent `json:"pages"`
	Meta       DocumentMeta  `json:"meta"`
}

// PageCount 返回文档页数（每条标签一页）。
func (d *Document) PageCount() int { return len(d.Pages) }

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Creator string `json:"creator"`
}
