// Package output 提供同一份 PDF 字节流的三种呈现方式：内联预览的 data URI、
// 落盘文件与平台打印队列。这里不包含任何布局逻辑。
package output

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/vincent-petithory/dataurl"
)

// DefaultFilename 是调用方未指定文件名时的默认值。
const DefaultFilename = "labels.pdf"

const pdfMediaType = "application/pdf"

// DataURI 将 PDF 编码为 base64 data URI，供内联预览使用。
func DataURI(pdf []byte) string {
	return dataurl.New(pdf, pdfMediaType).String()
}

// Save 将 PDF 写入 path 并返回实际写入的路径；path 为空时使用 DefaultFilename。
func Save(pdf []byte, path string) (string, error) {
	if path == "" {
		path = DefaultFilename
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return path, nil
}

// Print 把 PDF 写入临时文件并交给平台打印队列（lp 或 lpr）。
// 打印命令返回后即删除临时文件；队列侧此时已完成取件。
func Print(pdf []byte) error {
	spooler, err := lookupSpooler()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "labels-*.pdf")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}

	if out, err := exec.Command(spooler, path).CombinedOutput(); err != nil {
		return fmt.Errorf("提交打印失败: %v: %s", err, out)
	}
	return nil
}

func lookupSpooler() (string, error) {
	for _, name := range []string{"lp", "lpr"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("找不到打印命令（lp/lpr）")
}
