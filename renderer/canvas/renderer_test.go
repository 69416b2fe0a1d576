package canvasrenderer

import (
	"bytes"
	"image"
	"testing"

	"github.com/ByLCY/labelkit/layout"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("构造渲染器失败: %v", err)
	}
	return r
}

// TestTextWidthMonotonic 验证测量宽度随内容增长且为正值。
func TestTextWidthMonotonic(t *testing.T) {
	r := newTestRenderer(t)
	a := r.TextWidth("M", 8)
	ab := r.TextWidth("MM", 8)
	if a <= 0 {
		t.Fatalf("单字符宽度应为正值: %g", a)
	}
	if ab <= a {
		t.Fatalf("宽度应随内容增长: a=%g ab=%g", a, ab)
	}
}

// TestTextWidthScalesWithFontSize 验证更大字号产生更大的测量宽度。
func TestTextWidthScalesWithFontSize(t *testing.T) {
	r := newTestRenderer(t)
	small := r.TextWidth("Screws", 6)
	large := r.TextWidth("Screws", 10)
	if large <= small {
		t.Fatalf("字号变大宽度应增长: small=%g large=%g", small, large)
	}
}

func testDocument() *layout.Document {
	qr := image.NewGray(image.Rect(0, 0, 91, 91))
	return &layout.Document{
		PageWidth:  57,
		PageHeight: 32,
		Meta:       layout.DocumentMeta{Title: "Labels", Creator: "labelkit"},
		Pages: []layout.PageContent{
			{
				Width: 57, Height: 32, Margin: 2,
				Image: &layout.ImageBox{Image: qr, X: 2, Y: 2, Width: 22.8, Height: 22.8},
				Texts: []layout.TextBox{
					{Content: "M3x16mm Screws", X: 26.8, Y: 2, Width: 28.2, FontSize: 10, Bold: true},
					{Content: "Drawer 3", X: 26.8, Y: 8, Width: 28.2, FontSize: 7},
				},
			},
			{
				Width: 57, Height: 32, Margin: 2,
				Texts: []layout.TextBox{{Content: "Hex Nuts", X: 2, Y: 2, Width: 53, FontSize: 10, Bold: true}},
			},
		},
	}
}

// TestRenderProducesPDF 渲染双页文档并检查 PDF 文件头。
func TestRenderProducesPDF(t *testing.T) {
	r := newTestRenderer(t)
	data, err := r.Render(testDocument())
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("PDF 输出为空")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("输出缺少 PDF 文件头: %q", data[:8])
	}
}

func TestRenderRejectsEmptyDocument(t *testing.T) {
	r := newTestRenderer(t)
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("nil 文档应当报错")
	}
	if _, err := r.Render(&layout.Document{PageWidth: 57, PageHeight: 32}); err == nil {
		t.Fatalf("零页文档应当报错")
	}
}

// TestRenderRejectsMissingRaster 验证声明了二维码却没有位图时报错而非空渲染。
func TestRenderRejectsMissingRaster(t *testing.T) {
	r := newTestRenderer(t)
	doc := testDocument()
	doc.Pages[0].Image.Image = nil
	if _, err := r.Render(doc); err == nil {
		t.Fatalf("缺少位图应当报错")
	}
}
