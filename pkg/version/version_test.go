package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("Should return the bare version without build details", func(t *testing.T) {
		assert.Equal(t, "unknown", GetVersion())
	})

	t.Run("Should append commit and build date", func(t *testing.T) {
		v, c, d := Version, CommitHash, BuildDate
		t.Cleanup(func() { Version, CommitHash, BuildDate = v, c, d })
		Version, CommitHash, BuildDate = "1.2.0", "abc123", "2024-01-01"
		assert.Equal(t, "1.2.0 (abc123, 2024-01-01)", GetVersion())
	})
}
