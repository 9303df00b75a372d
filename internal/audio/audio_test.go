package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/onitore/internal/model"
)

func TestBellRingsForAllCuesByDefault(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)
	bell.Play(model.CueTick)
	bell.Play(model.CueWrong)
	assert.Equal(t, "\a\a", buf.String())
}

func TestBellFiltersCues(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf, model.CueCorrect)
	bell.Play(model.CueTick)
	bell.Play(model.CueCorrect)
	bell.Play(model.CueKeep)
	assert.Equal(t, "\a", buf.String())
}

func TestForTerminalDiscardsOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "cues"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	p := ForTerminal(f)
	assert.IsType(t, Discard{}, p)
	p.Play(model.CueDisplay)

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.IsType(t, Discard{}, ForTerminal(nil))
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	rec.Play(model.CueTick)
	rec.Play(model.CueDisplay)
	assert.Equal(t, []model.Cue{model.CueTick, model.CueDisplay}, rec.Cues)
	rec.Reset()
	assert.Empty(t, rec.Cues)
}
