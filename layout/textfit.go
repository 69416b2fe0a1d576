package layout

import "strings"

// 该文件实现文本适配：带省略号的单行截断与贪心多行折行。
// 宽度入参与测量结果均为 mm；测量函数由渲染后端注入。

const ellipsis = "..."

// TruncateToWidth 返回 text 本身（放得下时），否则返回最长的能与省略号一起
// 放下的前缀加省略号。前缀长度用二分搜索确定，测量调用次数为 O(log n)；
// 连省略号都放不下时退化为只返回省略号。
func TruncateToWidth(text string, maxWidth float64, widthOf func(string) float64) string {
	if text == "" {
		return ""
	}
	if widthOf(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	// lo 始终是已知可放下的前缀长度，初值 0 兜住宽度过小的退化情况。
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if widthOf(string(runes[:mid])+ellipsis) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + ellipsis
}

// WrapToLines 将文本贪心折成若干行，每行不超过 maxWidth。优先在空白处断行，
// 单词本身超宽时在词内按宽度硬切。被调用方行数预算丢弃的行不带省略号。
func WrapToLines(text string, maxWidth float64, widthOf func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	emit := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		if widthOf(word) > maxWidth {
			emit()
			for _, chunk := range splitWordByWidth(word, maxWidth, widthOf) {
				lines = append(lines, chunk)
			}
			continue
		}
		if current == "" {
			current = word
			continue
		}
		if widthOf(current+" "+word) <= maxWidth {
			current += " " + word
		} else {
			emit()
			current = word
		}
	}
	emit()
	return lines
}

// splitWordByWidth 把超宽单词按宽度切成片段；保证每段至少一个字符，避免死循环。
func splitWordByWidth(word string, maxWidth float64, widthOf func(string) float64) []string {
	var parts []string
	var builder strings.Builder
	count := 0
	for _, r := range word {
		builder.WriteRune(r)
		count++
		if widthOf(builder.String()) > maxWidth && count > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
			count = 1
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
