package layout

import (
	"fmt"
	"image"
	"math"

	"github.com/ByLCY/labelkit/label"
)

// 装配器按“先编码、后排版”的两阶段流水线工作：阶段一逐条生成二维码位图
//（条目相互独立，需要时可以安全并行化），阶段二同步顺序排版，一条一页。

// qrPixelScale 以二维码方块边长（mm）的 4 倍像素栅格化，保证打印清晰度。
const qrPixelScale = 4

// Assemble 把 N 条标签数据装配成 N 页的文档。items 不能为空；任何一条
// 二维码编码失败都会放弃整个任务，绝不返回部分页面缺码的文档。
func Assemble(items []label.Data, opts label.PrintOptions, deps AssembleOptions) (*Document, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("打印任务至少需要一条标签数据")
	}
	if deps.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少测量后端 Measurer")
	}
	if err := opts.Size.Validate(); err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("第 %d 条标签数据非法: %w", i+1, err)
		}
	}

	// 阶段一：编码全部二维码位图。
	var rasters []image.Image
	if opts.ShowQRCode {
		if deps.Encoder == nil {
			return nil, fmt.Errorf("layout: 启用二维码时缺少编码器 Encoder")
		}
		px := int(math.Round(QRSideMM(opts.Size) * qrPixelScale))
		rasters = make([]image.Image, len(items))
		for i, item := range items {
			img, err := deps.Encoder.Encode(item.QRURL, px)
			if err != nil {
				return nil, fmt.Errorf("第 %d 条标签编码二维码失败: %w", i+1, err)
			}
			rasters[i] = img
		}
	}

	// 阶段二：逐条排版。页面尺寸由任务级规格固定，所有页面共享。
	doc := &Document{
		PageWidth:  opts.Size.WidthMM,
		PageHeight: opts.Size.HeightMM,
		Pages:      make([]PageContent, 0, len(items)),
		Meta:       DocumentMeta{Title: "Labels", Creator: "labelkit"},
	}
	for i, item := range items {
		var img image.Image
		if rasters != nil {
			img = rasters[i]
		}
		doc.Pages = append(doc.Pages, Layout(item, opts, img, deps.Measurer))
	}
	return doc, nil
}
