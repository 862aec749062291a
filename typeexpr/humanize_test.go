package typeexpr_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gad-lang/clsmeth/typeexpr"
)

func TestErrorHumanizing(t *testing.T) {
	src := "(string"
	_, err := typeexpr.Parse(src, nil)
	require.Error(t, err)

	var buf bytes.Buffer
	h := &typeexpr.ErrorHumanizing{Source: src}
	h.Humanize(&buf, err)
	require.Equal(t, "Parse Error: expected ')', found EOF\n\tat offset 8\n"+
		"     | (string\n"+
		strings.Repeat(" ", 14)+"^\n", buf.String())

	src = "shape('a => int)"
	_, err = typeexpr.Parse(src, nil)
	buf.Reset()
	h = &typeexpr.ErrorHumanizing{Source: src, Max: 1}
	h.Humanize(&buf, err)
	require.Equal(t, "Parse Error: string literal not terminated\n\tat offset 7\n"+
		"     | shape('a => int)\n"+
		strings.Repeat(" ", 13)+"^\n"+
		"(and 1 more errors)\n", buf.String())

	// multi line sources trace the offending line only
	src = "shape(\n  'a' => int,\n  'b' => ,\n)"
	_, err = typeexpr.Parse(src, nil)
	buf.Reset()
	h = &typeexpr.ErrorHumanizing{Source: src, Max: 1}
	h.Humanize(&buf, err)
	require.Equal(t, "Parse Error: expected type, found ,\n\tat offset 31\n"+
		"     |   'b' => ,\n"+
		strings.Repeat(" ", 16)+"^\n", buf.String())

	buf.Reset()
	h.Humanize(&buf, errors.New("boom"))
	require.Equal(t, "ERROR: boom\n", buf.String())
}
