package audio

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactLifecycle(t *testing.T) {
	dir := t.TempDir()
	wav := EncodeWAV(make([]byte, 480), SpeechFormat)

	a, err := NewFileArtifact(dir, wav)
	require.NoError(t, err)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, wav, data)
	assert.Equal(t, len(wav), a.Size)
	assert.True(t, strings.HasPrefix(a.URL(), "file://"))
	assert.Contains(t, a.URL(), a.ID)

	require.NoError(t, a.Release())
	_, err = os.Stat(a.Path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, a.Release(), "release is idempotent")
}

func TestArtifactsAreDistinct(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileArtifact(dir, []byte("a"))
	require.NoError(t, err)
	b, err := NewFileArtifact(dir, []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Path, b.Path)
	require.NoError(t, a.Release())

	_, err = os.Stat(b.Path)
	assert.NoError(t, err, "releasing one artifact leaves the other")
}

func TestNilArtifactRelease(t *testing.T) {
	var a *Artifact
	assert.NoError(t, a.Release())
}

func TestPlayerWithStubCommand(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	p, err := NewPlayer("true")
	require.NoError(t, err)

	a, err := NewFileArtifact(t.TempDir(), EncodeWAV(nil, SpeechFormat))
	require.NoError(t, err)
	defer a.Release()

	require.NoError(t, p.Play(a))
	assert.Eventually(t, func() bool { return !p.Playing() }, 5*time.Second, 10*time.Millisecond)
	p.Stop()
}

func TestNewPlayerUnknownCommand(t *testing.T) {
	_, err := NewPlayer("definitely-not-a-player-binary")
	assert.Error(t, err)
}
