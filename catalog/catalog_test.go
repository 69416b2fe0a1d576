package catalog

import "testing"

// TestBuiltinSizesValid 验证内置规格表在目录边界就满足几何约束。
func TestBuiltinSizesValid(t *testing.T) {
	all := Sizes()
	if len(all) == 0 {
		t.Fatalf("规格表为空")
	}
	seen := map[string]bool{}
	for _, s := range all {
		if err := s.Validate(); err != nil {
			t.Fatalf("内置规格 %s 非法: %v", s.ID, err)
		}
		if seen[s.ID] {
			t.Fatalf("规格 ID 重复: %s", s.ID)
		}
		seen[s.ID] = true
	}
}

// TestDefaultIsFirstEntry 验证默认规格为表中第一项。
func TestDefaultIsFirstEntry(t *testing.T) {
	if got, want := Default().ID, Sizes()[0].ID; got != want {
		t.Fatalf("默认规格应为第一项: got=%s want=%s", got, want)
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("thermal-4x6")
	if !ok {
		t.Fatalf("找不到 thermal-4x6")
	}
	if s.WidthMM != 101.6 || s.HeightMM != 152.4 {
		t.Fatalf("thermal-4x6 尺寸错误: %gx%g", s.WidthMM, s.HeightMM)
	}
	if _, ok := ByID("no-such-size"); ok {
		t.Fatalf("不存在的 ID 不应命中")
	}
}

// TestLandscapeDerived 验证横纵方向由宽高推导，而非存储字段。
func TestLandscapeDerived(t *testing.T) {
	if !(Size{WidthMM: 90, HeightMM: 29}).Landscape() {
		t.Fatalf("90x29 应为横向")
	}
	if (Size{WidthMM: 12, HeightMM: 50}).Landscape() {
		t.Fatalf("12x50 应为纵向")
	}
}

// TestSizesReturnsCopy 验证调用方修改返回值不会污染内置表。
func TestSizesReturnsCopy(t *testing.T) {
	first := Sizes()
	first[0].WidthMM = -1
	if Sizes()[0].WidthMM == -1 {
		t.Fatalf("Sizes 应返回副本")
	}
}
