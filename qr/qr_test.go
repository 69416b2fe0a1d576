package qr

import "testing"

func TestEncodeProducesRequestedSize(t *testing.T) {
	img, err := New().Encode("https://inv.example/items/abc", 256)
	if err != nil {
		t.Fatalf("编码失败: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("位图尺寸应为 256x256，实际 %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := New().Encode("", 256); err == nil {
		t.Fatalf("空内容应当报错")
	}
	if _, err := New().Encode("https://x", 0); err == nil {
		t.Fatalf("非正像素尺寸应当报错")
	}
}

// TestEncodeDeterministic 验证相同输入产生相同位图（无隐藏随机性）。
func TestEncodeDeterministic(t *testing.T) {
	a, err := New().Encode("https://inv.example/items/abc", 128)
	if err != nil {
		t.Fatalf("编码失败: %v", err)
	}
	b, err := New().Encode("https://inv.example/items/abc", 128)
	if err != nil {
		t.Fatalf("编码失败: %v", err)
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("位图在 (%d,%d) 处不一致", x, y)
			}
		}
	}
}
