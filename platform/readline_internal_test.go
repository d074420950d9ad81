package platform

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReadLineReadsUntilNewline(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("first line\nsecond line\n")
	o := &OS{Stdin: stdin, reader: bufio.NewReader(stdin)}

	line, ok := o.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "first line", line)

	line, ok = o.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "second line", line)

	_, ok = o.ReadLine()
	assert.False(t, ok)
}
