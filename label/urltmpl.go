package label

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ExpandURL 将模板中的 ${type}/${id}/${name} 占位符替换为标签数据的字段值，
// 用于批量构造详情页链接作为二维码载荷。未知占位符保留原样。
func ExpandURL(template string, d Data) string {
	return exprPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		switch strings.TrimSpace(groups[1]) {
		case "type":
			return d.Type
		case "id":
			return d.ID
		case "name":
			return d.Name
		default:
			return match
		}
	})
}
