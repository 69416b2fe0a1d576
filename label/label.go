package label

import (
	"fmt"

	"github.com/ByLCY/labelkit/catalog"
)

// Data 描述一条可打印对象（物品或库位）。每次打印请求由调用方临时构造，
// 不做持久化。
type Data struct {
	Type        string `json:"type"` // "item" 或 "location"
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	// QRURL 是编码进二维码的载荷，通常指向对象详情页。
	QRURL string `json:"qrUrl"`
}

// Validate 检查打印对象满足最低要求。
func (d Data) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("标签缺少 name")
	}
	if d.QRURL == "" {
		return fmt.Errorf("标签 %q 缺少 qrUrl", d.Name)
	}
	return nil
}

// PrintOptions 是一次打印任务共享的布局策略：一种标签规格加四个互相独立的
// 显示开关。任意组合都是合法的。
type PrintOptions struct {
	Size            catalog.Size `json:"size"`
	ShowQRCode      bool         `json:"showQRCode"`
	ShowCategory    bool         `json:"showCategory"`
	ShowLocation    bool         `json:"showLocation"`
	ShowDescription bool         `json:"showDescription"`
}

// DefaultPrintOptions returns the catalog default size with every toggle on.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Size:            catalog.Default(),
		ShowQRCode:      true,
		ShowCategory:    true,
		ShowLocation:    true,
		ShowDescription: true,
	}
}
