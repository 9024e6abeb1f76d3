package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/JakWdo/Symulacja-sub006/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestColorProfile_Detected(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestNew_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_NilWriterFallsBackToStderr(t *testing.T) {
	assert.NotNil(t, output.New(nil))
	assert.NotNil(t, output.NewWithProfile(nil, output.ColorProfile))
}

func TestNewWithProfile_WritesThrough(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, output.ColorProfileANSI)
	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}
