package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinkWritesFeedback(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf)

	sink.Sound()
	sink.Haptic()

	assert.Equal(t, "\a[haptic] ██ ~ ██ ~ ████\n", buf.String())
}
