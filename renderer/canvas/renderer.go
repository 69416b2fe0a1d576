package canvasrenderer

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/labelkit/fonts"
	"github.com/ByLCY/labelkit/layout"
	"github.com/ByLCY/labelkit/renderer"
)

// Renderer draws assembled label documents via github.com/tdewolff/canvas.
type Renderer struct {
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// NewRenderer 加载内置字体族并构造渲染器。
func NewRenderer() (*Renderer, error) {
	family, err := fonts.Family()
	if err != nil {
		return nil, err
	}
	return &Renderer{family: family}, nil
}

func (r *Renderer) face(sizePt float64, bold bool) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return r.family.Face(sizePt, canvas.Black, style, canvas.FontNormal)
}

// TextWidth 实现 layout.Measurer。
// 约定：fontSizePt 为 pt，返回的排版宽度为 mm，与布局引擎的坐标一致。
func (r *Renderer) TextWidth(text string, fontSizePt float64) float64 {
	return r.face(fontSizePt, false).TextWidth(text)
}

// Render 将文档渲染为 PDF 字节流，每条标签一页，页面尺寸即标签几何（mm）。
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, doc.PageWidth, doc.PageHeight, nil)
	writer.SetInfo(doc.Meta.Title, doc.Meta.Subject, "", doc.Meta.Author, doc.Meta.Creator)
	for i, page := range doc.Pages {
		if i > 0 {
			writer.NewPage(doc.PageWidth, doc.PageHeight)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.PageContent) error {
	if page.Image != nil {
		if page.Image.Image == nil {
			return fmt.Errorf("页面声明了二维码但缺少位图")
		}
		// 按目标宽度（mm）换算位图密度
		dpmm := float64(page.Image.Image.Bounds().Dx()) / page.Image.Width
		if dpmm <= 0 {
			dpmm = 1
		}
		ctx.DrawImage(page.Image.X, page.Image.Y, page.Image.Image, canvas.DPMM(dpmm))
	}

	for _, tb := range page.Texts {
		face := r.face(tb.FontSize, tb.Bold)
		line := canvas.NewTextLine(face, tb.Content, canvas.Left)
		// 基线位置：行顶部（tb.Y，mm）加上字体上升部（Ascent）
		baseline := tb.Y + face.Metrics().Ascent
		ctx.DrawText(tb.X, baseline, line)
	}
	return nil
}
