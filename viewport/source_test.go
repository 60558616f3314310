package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticSource(t *testing.T) {
	src := Static{Width: 100, Height: 30}

	w, h := src.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	ch := make(chan struct{}, 1)
	cancel := src.Notify(ch)
	cancel()
	cancel() // safe to call twice
	assert.Empty(t, ch, "static sources never notify")
}

func TestSizeFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		lines   string
		wantW   int
		wantH   int
		ok      bool
	}{
		{name: "both set", columns: "132", lines: "43", wantW: 132, wantH: 43, ok: true},
		{name: "missing lines", columns: "132", lines: "", ok: false},
		{name: "garbage", columns: "wide", lines: "43", ok: false},
		{name: "non-positive", columns: "0", lines: "43", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			t.Setenv("LINES", tt.lines)

			w, h, ok := sizeFromEnv()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantW, w)
				assert.Equal(t, tt.wantH, h)
			}
		})
	}
}
