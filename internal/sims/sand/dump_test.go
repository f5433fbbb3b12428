package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpAndLoad(t *testing.T) {
	w := newTestWorld(t, 6, 4)
	w.Load(`
SW?B
.RAAAA`)
	assert.Equal(t, "BBBBBB\nBSW..B\nB.RAAB\nBBBBBB\n", w.Dump())
	assert.Equal(t, byte('?'), Kind(77).Glyph())
}
