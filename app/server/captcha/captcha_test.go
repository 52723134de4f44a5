package captcha

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	for i := 0; i < 20; i++ {
		text, err := NewText()
		require.NoError(t, err)
		require.Len(t, text, Length)
		for _, r := range text {
			assert.Contains(t, charset, string(r))
		}
	}
}

func TestVerify(t *testing.T) {
	assert.True(t, Verify("AB3DE", "AB3DE"))
	// 不区分大小写
	assert.True(t, Verify("AB3DE", "ab3de"))
	assert.False(t, Verify("AB3DE", "AB3DF"))
	assert.False(t, Verify("AB3DE", ""))
	// 答案为空时任何输入都不通过
	assert.False(t, Verify("", ""))
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG("AB3DE"))
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, ">AB3DE</text>")
}
