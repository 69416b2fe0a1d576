package renderer

import "github.com/ByLCY/labelkit/layout"

// Renderer 将装配好的标签文档输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(doc *layout.Document) ([]byte, error)
}
