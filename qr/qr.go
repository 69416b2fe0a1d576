// Package qr 将 URL 字符串编码为指定像素边长的二维码位图。
// 编码算法本身由 github.com/skip2/go-qrcode 提供，这里只是适配层。
package qr

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder encodes QR payloads at a fixed error-correction level.
type Encoder struct {
	Level qrcode.RecoveryLevel
}

// New returns an encoder at error-correction level medium, the level used for
// printed labels.
func New() *Encoder { return &Encoder{Level: qrcode.Medium} }

// Encode 将 content 编码为 sizePx×sizePx 的位图。纯本地计算，无网络与磁盘访问。
func (e *Encoder) Encode(content string, sizePx int) (image.Image, error) {
	if content == "" {
		return nil, fmt.Errorf("二维码内容为空")
	}
	if sizePx <= 0 {
		return nil, fmt.Errorf("二维码像素尺寸必须为正数: %d", sizePx)
	}
	code, err := qrcode.New(content, e.Level)
	if err != nil {
		return nil, fmt.Errorf("编码二维码失败: %w", err)
	}
	return code.Image(sizePx), nil
}
