package captcha

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strings"
)

// 挑战文本：5 位大写字母加数字，比较时不区分大小写
const (
	Length  = 5
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewText 生成一段随机挑战文本
func NewText() (string, error) {
	var b strings.Builder
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("generate captcha text: %w", err)
		}
		b.WriteByte(charset[n.Int64()])
	}
	return b.String(), nil
}

// Verify 校验用户输入，不区分大小写
func Verify(answer, input string) bool {
	return answer != "" && strings.EqualFold(answer, input)
}

// RenderSVG 把挑战文本渲染成一小块带噪点线条的 SVG 。
// 图形本身只是展示层，核心逻辑只关心文本
func RenderSVG(text string) []byte {
	const (
		width  = 150
		height = 50
	)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#dcdcdc"/>`, width, height)

	// 干扰线
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#%02x%02x%02x" stroke-width="1"/>`,
			mrand.Intn(width), mrand.Intn(height), mrand.Intn(width), mrand.Intn(height),
			100+mrand.Intn(100), 100+mrand.Intn(100), 100+mrand.Intn(100))
	}

	fmt.Fprintf(&b, `<text x="50%%" y="55%%" dominant-baseline="middle" text-anchor="middle" `+
		`font-family="monospace" font-size="24" letter-spacing="6" fill="#323232">%s</text>`, text)
	b.WriteString(`</svg>`)

	return []byte(b.String())
}
