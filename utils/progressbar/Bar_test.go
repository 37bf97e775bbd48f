package progressbar

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 10, 4)

	assert.Equal(t, 0.0, bar.Fraction())
	bar.Increment()
	bar.Increment()
	assert.Equal(t, 0.5, bar.Fraction())
	assert.True(t, strings.HasPrefix(bar.String(), "|█████     | [50.00% | 2/4"))

	bar.Set(10)
	assert.Equal(t, 1.0, bar.Fraction())
	bar.Set(-1)
	assert.Equal(t, 0.0, bar.Fraction())

	bar.SetStatus("mean return 0.5")
	assert.True(t, strings.HasSuffix(bar.String(), " mean return 0.5"))

	bar.Display()
	bar.Close()
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Equal(t, 2, strings.Count(buf.String(), "\r\033[K"))
}

func TestBarEmpty(t *testing.T) {
	bar := New(&bytes.Buffer{}, 5, 0)
	assert.Equal(t, 1.0, bar.Fraction())
	assert.True(t, strings.HasPrefix(bar.String(), "|█████|"))
}

type counter struct {
	n atomic.Int64
}

func (c *counter) Progress() (int, int) {
	return int(c.n.Add(1)), 100
}

func TestWatch(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, 10, 100)
	src := &counter{}

	ctx, cancel := context.WithTimeout(context.Background(),
		20*time.Millisecond)
	defer cancel()

	Watch(ctx, bar, src, time.Millisecond, func() string { return "ok" })

	assert.Greater(t, src.n.Load(), int64(1))
	assert.True(t, strings.HasSuffix(buf.String(), " ok\n"))
}
