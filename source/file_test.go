package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFileBasics(t *testing.T) {
	f := New("hello")
	assert.Equal(t, "hello", f.Contents())
	assert.Equal(t, 5, f.Length())
	_, ok := f.Origin()
	assert.False(t, ok)

	wf := NewWithOrigin("hi", "mem://test")
	origin, ok := wf.Origin()
	require.True(t, ok)
	assert.Equal(t, "mem://test", origin)
}

func TestComputeLineAndColumn(t *testing.T) {
	// Lines: "ab\n" (0-2), "cd\n" (3-5), "ef" (6-7)
	f := New("ab\ncd\nef")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2}, // the '\n' itself is still on line 0
		{3, 1, 0}, // 'c'
		{4, 1, 1},
		{5, 1, 2},
		{6, 2, 0}, // 'e'
		{8, 2, 2}, // length, one past 'f'
	}
	for _, tt := range tests {
		line, err := f.ComputeLine(tt.offset)
		require.NoError(t, err)
		assert.Equal(t, tt.line, line, "line at offset %d", tt.offset)

		col, err := f.ComputeColumn(tt.offset)
		require.NoError(t, err)
		assert.Equal(t, tt.column, col, "column at offset %d", tt.offset)
	}
}

func TestComputeLineOutOfRange(t *testing.T) {
	f := New("abc")
	_, err := f.ComputeLine(-1)
	require.Error(t, err)
	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)

	_, err = f.ComputeLine(4)
	require.Error(t, err)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestCRLFCountsAsOneTerminator(t *testing.T) {
	// Indices: a0 \r1 \n2 b3 \r4 c5 \n6 d7
	// Terminators: "\r\n" at 1-2 (next line starts at 3), bare "\r" at 4
	// (next line starts at 5), "\n" at 6 (next line starts at 7).
	f := New("a\r\nb\rc\nd")
	assert.Len(t, f.lineStartsTable(), 3)

	line, err := f.ComputeLine(3) // 'b'
	require.NoError(t, err)
	assert.Equal(t, 1, line)

	line, err = f.ComputeLine(5) // 'c'
	require.NoError(t, err)
	assert.Equal(t, 2, line)

	line, err = f.ComputeLine(7) // 'd'
	require.NoError(t, err)
	assert.Equal(t, 3, line)
}

func TestSpanRangeErrors(t *testing.T) {
	f := New("abcde")

	_, err := f.Span(-1, 2)
	require.Error(t, err)

	_, err = f.Span(0, 10)
	require.Error(t, err)

	_, err = f.Span(3, 1)
	require.Error(t, err)

	span, err := f.Span(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "bcd", span.Text())
	assert.Equal(t, 1, span.Offset())
	assert.Equal(t, 3, span.Length())
}

func TestLineStartTableBuiltOnce(t *testing.T) {
	f := New("a\nb\nc")
	line1, err := f.ComputeLine(4)
	require.NoError(t, err)
	// Querying again must return the same answer from the memoized table.
	line2, err := f.ComputeLine(4)
	require.NoError(t, err)
	assert.Equal(t, line1, line2)
	assert.Len(t, f.lineStartsTable(), 2)
}

func TestEmptyFileHasNoLineStarts(t *testing.T) {
	f := New("")
	assert.Empty(t, f.lineStartsTable())
	line, err := f.ComputeLine(0)
	require.NoError(t, err)
	assert.Equal(t, 0, line)
}
