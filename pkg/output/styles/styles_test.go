package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Title", "Event", "Signature", "Handler", "Applied", "Noop", "Failed", "Skipped", "Error", "Summary"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
	assert.True(t, GetStyle("Event").GetBold())
	assert.True(t, GetStyle("Signature").GetItalic())
}

func TestGetStyleUnknown(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
	assert.Equal(t, "x", style.Render("x"))
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { _ = Reset() })

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  Event:\n    underline: true\n"), 0644))

	require.NoError(t, LoadStyles(path))
	assert.True(t, GetStyle("Event").GetUnderline())
	assert.False(t, GetStyle("Event").GetBold())

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadStylesFromData([]byte("styles: [")))
}
