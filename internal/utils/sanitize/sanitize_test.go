package sanitize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Great", "Great"},
		{"trims and collapses whitespace", "  Great \t  product\n", "Great product"},
		{"strips tags", "<b>Great</b> <i>stuff</i>", "Great stuff"},
		{"drops script bodies", "<script>alert(1)</script>Jo", "Jo"},
		{"drops control characters", "Jo\x00\x07e", "Joe"},
		{"keeps apostrophes", "O'Brien", "O'Brien"},
		{"neutralises encoded markup", "&lt;script&gt;x", "scriptx"},
		{"only markup becomes empty", "<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}

func TestRichText(t *testing.T) {
	assert.Equal(t, "Loved it", RichText("Loved it"))
	assert.Equal(t, "Loved it", RichText("<script>alert('x')</script>Loved it"))
	assert.Equal(t, "<b>Loved</b> it", RichText("<b>Loved</b> it"))
	assert.Equal(t, "line one\nline two", RichText("line one  \r\nline two\x00"))
	assert.NotContains(t, RichText(`<a href="javascript:alert(1)">x</a>`), "javascript:")
	assert.NotContains(t, RichText(`<p onclick="steal()">hi</p>`), "onclick")
	assert.Empty(t, RichText("   "))
}

func TestDate(t *testing.T) {
	d, err := Date(" 2024-01-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = Date("01/02/2024")
	assert.Error(t, err)

	_, err = Date("")
	assert.Error(t, err)
}
