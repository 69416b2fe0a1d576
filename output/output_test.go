package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vincent-petithory/dataurl"
)

func TestDataURI(t *testing.T) {
	uri := DataURI([]byte("%PDF-1.7 fake"))
	if !strings.HasPrefix(uri, "data:application/pdf;base64,") {
		t.Fatalf("data URI 前缀错误: %q", uri)
	}
	decoded, err := dataurl.DecodeString(uri)
	if err != nil {
		t.Fatalf("data URI 无法解码: %v", err)
	}
	if string(decoded.Data) != "%PDF-1.7 fake" {
		t.Fatalf("往返数据不一致: %q", decoded.Data)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	got, err := Save([]byte("%PDF"), path)
	if err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if got != path {
		t.Fatalf("返回路径错误: %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "%PDF" {
		t.Fatalf("文件内容错误: %q err=%v", data, err)
	}
}

// TestSaveDefaultFilename 验证空路径落到默认文件名 labels.pdf。
func TestSaveDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换目录失败: %v", err)
	}
	defer os.Chdir(wd)

	got, err := Save([]byte("%PDF"), "")
	if err != nil {
		t.Fatalf("写入失败: %v", err)
	}
	if got != DefaultFilename {
		t.Fatalf("默认文件名错误: %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultFilename)); err != nil {
		t.Fatalf("默认文件未写入: %v", err)
	}
}
