package catalog

import "fmt"

// Size describes one physical label geometry in millimeters.
// Sheet metadata (LabelsPerSheet/Columns/Rows) is informational only and is
// zero for tape and single thermal formats.
type Size struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	WidthMM  float64 `json:"widthMM"`
	HeightMM float64 `json:"heightMM"`

	LabelsPerSheet int `json:"labelsPerSheet,omitempty"`
	Columns        int `json:"columns,omitempty"`
	Rows           int `json:"rows,omitempty"`
}

// Landscape reports the derived orientation; it is never stored.
func (s Size) Landscape() bool { return s.WidthMM > s.HeightMM }

// Validate rejects geometry the layout engine must never see.
func (s Size) Validate() error {
	if s.WidthMM <= 0 || s.HeightMM <= 0 {
		return fmt.Errorf("标签 %q 的尺寸必须为正数: %gx%gmm", s.ID, s.WidthMM, s.HeightMM)
	}
	return nil
}

// sizes 是内置的标签规格表。新增一种物理规格只需要在这里追加一条记录。
var sizes = []Size{
	{ID: "multi-57x32", Name: "Multipurpose 57x32", Brand: "Herma", WidthMM: 57, HeightMM: 32},
	{ID: "avery-5160", Name: "Address 5160", Brand: "Avery", WidthMM: 66.675, HeightMM: 25.4, LabelsPerSheet: 30, Columns: 3, Rows: 10},
	{ID: "dk-11201", Name: "Standard Address DK-11201", Brand: "Brother", WidthMM: 90, HeightMM: 29},
	{ID: "tze-12mm", Name: "TZe Tape 12mm", Brand: "Brother", WidthMM: 12, HeightMM: 50},
	{ID: "tze-24mm", Name: "TZe Tape 24mm", Brand: "Brother", WidthMM: 24, HeightMM: 60},
	{ID: "thermal-4x6", Name: "Shipping 4x6", Brand: "Generic", WidthMM: 101.6, HeightMM: 152.4},
}

// Sizes returns a copy of the built-in size table.
func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

// Default returns the catalog's first entry.
func Default() Size { return sizes[0] }

// ByID looks up a built-in size by its identifier.
func ByID(id string) (Size, bool) {
	for _, s := range sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}
