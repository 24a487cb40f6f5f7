package arrayvec_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/arrayvec"
	"github.com/stretchr/testify/assert"
)

func TestVec_LoggerTracing(t *testing.T) {
	var buf bytes.Buffer
	l := arrayvec.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	v := arrayvec.New(1, arrayvec.WithLogger[int](l))
	v.Push(1)

	_ = v.TryPush(2)
	assert.Contains(t, buf.String(), "capacity exceeded")
	assert.Contains(t, buf.String(), "op=TryPush")

	d := v.Drain(0, 1)
	_ = d.Close()
	assert.Contains(t, buf.String(), "drain open")
	assert.Contains(t, buf.String(), "drain close")
}
