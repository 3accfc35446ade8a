package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/imagetext/text"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	sess, err := newSession(&out, defaultSettings())
	require.NoError(t, err)
	return sess, &out
}

func run(t *testing.T, sess *session, line string) {
	t.Helper()

	cmd, err := parseCommand(line)
	require.NoError(t, err, line)
	quit, err := sess.execute(cmd)
	require.NoError(t, err, line)
	require.False(t, quit, line)
}

// helloBox returns the width of "Hello" and the bottom of its box in the
// default font, used to pick a wrap width that breaks after "Hello".
func helloBox(t *testing.T) (width, bottom float64) {
	t.Helper()

	hello, err := text.New("Hello")
	require.NoError(t, err)
	box, err := hello.BBox()
	require.NoError(t, err)
	return box.MaxX, box.MaxY
}

func TestSessionNeedsText(t *testing.T) {
	sess, _ := newTestSession(t)
	for _, line := range []string{"length", "bbox", "wrap 10"} {
		cmd, err := parseCommand(line)
		require.NoError(t, err)
		_, err = sess.execute(cmd)
		assert.Error(t, err, line)
	}
}

func TestSessionWrap(t *testing.T) {
	sess, out := newTestSession(t)
	width, _ := helloBox(t)
	run(t, sess, `text "Hello Hello"`)
	run(t, sess, fmt.Sprintf("wrap %v", width+1))

	assert.Equal(t, "Hello\nHello", sess.current.String())
	assert.Nil(t, sess.remainder)
	assert.Contains(t, out.String(), "wrapped")

	run(t, sess, "reset")
	assert.Equal(t, "Hello Hello", sess.current.String())
}

func TestSessionWrapRemainder(t *testing.T) {
	sess, out := newTestSession(t)
	width, bottom := helloBox(t)
	run(t, sess, `text "Hello Hello"`)
	run(t, sess, fmt.Sprintf("wrap %v height %v", width+1, bottom+0.5))

	assert.Equal(t, "Hello", sess.current.String())
	require.NotNil(t, sess.remainder)
	assert.Equal(t, " Hello", sess.remainder.String())
	assert.Contains(t, out.String(), "remainder")
}

func TestSessionWrapShrink(t *testing.T) {
	sess, _ := newTestSession(t)
	run(t, sess, "set size 20")
	run(t, sess, `text "Hello World"`)
	run(t, sess, "wrap 200 height 10 shrink")

	f, ok := sess.current.Font().(*text.OutlineFont)
	require.True(t, ok)
	assert.Less(t, f.Size(), 20.0)
	assert.Nil(t, sess.remainder)
}

func TestSessionSet(t *testing.T) {
	sess, _ := newTestSession(t)
	run(t, sess, `text "ab"`)
	run(t, sess, "set spacing 7")
	run(t, sess, "set direction ttb")
	run(t, sess, "set features -kern")
	run(t, sess, "set language en-us")

	assert.Equal(t, 7.0, sess.current.Spacing())
	assert.Equal(t, text.DirectionTTB, sess.current.Direction())
	assert.Equal(t, []text.Feature{{Tag: "kern", Value: 0}}, sess.current.Features())
	assert.Equal(t, "en-US", sess.current.Language())

	run(t, sess, "set font basic")
	assert.Equal(t, text.KindBitmap, sess.current.Font().Kind())
}

func TestSessionSetRollsBack(t *testing.T) {
	sess, _ := newTestSession(t)
	run(t, sess, `text "ab"`)

	for _, line := range []string{
		"set features bogus",
		"set language 12345678901",
		"set size -3",
		"set shaper harfbuzz",
		"set nonsense 1",
	} {
		cmd, err := parseCommand(line)
		require.NoError(t, err, line)
		_, err = sess.execute(cmd)
		assert.Error(t, err, line)
	}
	assert.Equal(t, defaultSettings(), sess.settings)

	cmd, err := parseCommand("set color true")
	require.NoError(t, err)
	run(t, sess, "set mode L")
	_, err = sess.execute(cmd)
	assert.ErrorIs(t, err, text.ErrEmbeddedColorMode)
}

func TestSessionLayout(t *testing.T) {
	sess, out := newTestSession(t)
	run(t, sess, `text "ab\ncd"`)
	run(t, sess, "lines at 5 5 align right")
	assert.Contains(t, out.String(), `"cd"`)

	out.Reset()
	run(t, sess, "bbox anchor ma")
	assert.Contains(t, out.String(), "Width")

	cmd, err := parseCommand("bbox anchor mt")
	require.NoError(t, err)
	_, err = sess.execute(cmd)
	assert.ErrorIs(t, err, text.ErrMultilineAnchor)

	cmd, err = parseCommand("length")
	require.NoError(t, err)
	_, err = sess.execute(cmd)
	assert.ErrorIs(t, err, text.ErrMultilineLength)
}

func TestSessionRender(t *testing.T) {
	sess, out := newTestSession(t)
	run(t, sess, `text "Hello"`)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.pdf"} {
		path := filepath.Join(dir, name)
		run(t, sess, `render "`+filepath.ToSlash(path)+`"`)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.Contains(t, out.String(), "wrote")

	cmd, err := parseCommand(`render "out.gif"`)
	require.NoError(t, err)
	_, err = sess.execute(cmd)
	assert.Error(t, err)
}

func TestOneShot(t *testing.T) {
	sess, out := newTestSession(t)
	width, bottom := helloBox(t)
	job := oneShot{payload: "Hello Hello", width: width + 1, height: bottom + 0.5, align: "left"}
	require.NoError(t, job.run(sess))

	assert.Equal(t, "Hello", sess.current.String())
	require.NotNil(t, sess.remainder)
	assert.Contains(t, out.String(), "remainder")

	bad := oneShot{payload: "x", width: 10, scale: "stretch"}
	assert.Error(t, bad.run(sess))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a\nb", unescape(`a\nb`))
}
