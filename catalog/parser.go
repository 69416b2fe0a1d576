package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// This file parses custom geometry strings like "57x32mm", "89 x 36 mm" or
// "4in x 6in" into a Size, for callers whose physical labels are not in the
// built-in table. A trailing unit distributes to both dimensions; the default
// unit is mm.

var (
	sizeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "Unit", Pattern: `(?i)mm|cm|in`},
		{Name: "Sep", Pattern: `[xX×*]`},
	})

	sizeParser = participle.MustBuild[sizeExpr](
		participle.Lexer(sizeLexer),
		participle.Elide("Whitespace"),
	)
)

type sizeExpr struct {
	Width  dimension `parser:"@@"`
	Height dimension `parser:"Sep @@"`
}

type dimension struct {
	Value measure `parser:"@Number"`
	Unit  string  `parser:"@Unit?"`
}

// measure captures a Number token as float64.
type measure float64

// Capture implements participle.Capture.
func (m *measure) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("measure capture requires value")
	}
	f, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return err
	}
	*m = measure(f)
	return nil
}

// toMM converts the dimension's value to millimeters.
func (d dimension) toMM(fallbackUnit string) (float64, error) {
	unit := strings.ToLower(d.Unit)
	if unit == "" {
		unit = strings.ToLower(fallbackUnit)
	}
	switch unit {
	case "", "mm":
		return float64(d.Value), nil
	case "cm":
		return float64(d.Value) * 10, nil
	case "in":
		return float64(d.Value) * 25.4, nil
	default:
		return 0, fmt.Errorf("不支持的单位 %q", unit)
	}
}

// ParseSize parses a "WxH" geometry string into a custom Size.
func ParseSize(input string) (Size, error) {
	expr, err := sizeParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return Size{}, fmt.Errorf("解析标签尺寸 %q 失败: %w", input, err)
	}
	// 只给了末尾单位时，两个维度共用它（"57x32mm" 的惯用写法）。
	width, err := expr.Width.toMM(expr.Height.Unit)
	if err != nil {
		return Size{}, err
	}
	height, err := expr.Height.toMM(expr.Width.Unit)
	if err != nil {
		return Size{}, err
	}
	s := Size{
		ID:       "custom",
		Name:     fmt.Sprintf("Custom %gx%gmm", width, height),
		WidthMM:  width,
		HeightMM: height,
	}
	if err := s.Validate(); err != nil {
		return Size{}, err
	}
	return s, nil
}
