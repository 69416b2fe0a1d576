package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ByLCY/labelkit/catalog"
	"github.com/ByLCY/labelkit/label"
	"github.com/ByLCY/labelkit/layout"
	"github.com/ByLCY/labelkit/output"
	"github.com/ByLCY/labelkit/qr"
	canvasrenderer "github.com/ByLCY/labelkit/renderer/canvas"
)

func main() {
	input := flag.String("data", "labels.json", "标签数据 JSON 文件路径")
	sizeID := flag.String("size", catalog.Default().ID, "标签规格 ID 或自定义尺寸（如 57x32mm）")
	out := flag.String("out", output.DefaultFilename, "PDF 输出路径（mode=file 时生效）")
	mode := flag.String("mode", "file", "输出方式：file、preview 或 print")
	debugPath := flag.String("debug", "", "布局调试 JSON 输出路径")
	urlTemplate := flag.String("url-template", "", "二维码链接模板（如 https://inv.example/${type}s/${id}），用于补全缺少 qrUrl 的条目")
	showQR := flag.Bool("qr", true, "渲染二维码")
	showCategory := flag.Bool("category", true, "渲染类别")
	showLocation := flag.Bool("location", true, "渲染库位")
	showDescription := flag.Bool("description", true, "渲染描述")
	flag.Parse()

	if err := run(*input, *sizeID, *out, *mode, *debugPath, *urlTemplate, *showQR, *showCategory, *showLocation, *showDescription); err != nil {
		log.Fatalf("生成标签失败: %v", err)
	}
}

// run 串联数据读取、装配、渲染与输出。
func run(input, sizeID, out, mode, debugPath, urlTemplate string, showQR, showCategory, showLocation, showDescription bool) error {
	items, err := readItems(input, urlTemplate)
	if err != nil {
		return fmt.Errorf("读取标签数据 %s 失败: %w", input, err)
	}

	size, err := resolveSize(sizeID)
	if err != nil {
		return err
	}
	opts := label.PrintOptions{
		Size:            size,
		ShowQRCode:      showQR,
		ShowCategory:    showCategory,
		ShowLocation:    showLocation,
		ShowDescription: showDescription,
	}

	r, err := canvasrenderer.NewRenderer()
	if err != nil {
		return err
	}

	doc, err := layout.Assemble(items, opts, layout.AssembleOptions{Measurer: r, Encoder: qr.New()})
	if err != nil {
		return fmt.Errorf("装配标签失败: %w", err)
	}

	if debugPath != "" {
		if err := layout.WriteDebugJSON(doc, debugPath); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	pdfBytes, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}

	switch mode {
	case "preview":
		fmt.Println(output.DataURI(pdfBytes))
	case "print":
		if err := output.Print(pdfBytes); err != nil {
			return err
		}
		fmt.Printf("已提交打印：%d 页\n", doc.PageCount())
	case "file":
		path, err := output.Save(pdfBytes, out)
		if err != nil {
			return err
		}
		fmt.Printf("已生成 PDF：%s（%d 页，%s）\n", path, doc.PageCount(), humanize.Bytes(uint64(len(pdfBytes))))
	default:
		return fmt.Errorf("未知输出方式：%s", mode)
	}
	return nil
}

// readItems 读取标签数据列表；配置了模板时为缺少 qrUrl 的条目补全链接。
func readItems(path, urlTemplate string) ([]label.Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []label.Data
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	if urlTemplate != "" {
		for i := range items {
			if items[i].QRURL == "" {
				items[i].QRURL = label.ExpandURL(urlTemplate, items[i])
			}
		}
	}
	return items, nil
}

// resolveSize 先查内置规格表，不命中且形如 WxH 时按自定义尺寸解析。
func resolveSize(id string) (catalog.Size, error) {
	if s, ok := catalog.ByID(id); ok {
		return s, nil
	}
	if strings.ContainsAny(id, "xX×*") {
		return catalog.ParseSize(id)
	}
	return catalog.Size{}, fmt.Errorf("未知标签规格 %q", id)
}
