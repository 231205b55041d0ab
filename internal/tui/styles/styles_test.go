package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Arcade ...", Truncate("Arcade Classics", 10))
	assert.Equal(t, "Arc", Truncate("Arcade", 3))
	assert.Equal(t, "Zoë...", Truncate("Zoë's Playlist", 6))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abc", Pad("abcdef", 3))
}
