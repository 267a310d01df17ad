package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paths = Paths{
	Dir:           "game",
	IdentitiesDir: "animals",
	WinImage:      "congrats.png",
	LoseImage:     "you_lost.png",
	TieImage:      "tie.png",
	Sound:         "collect.wav",
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, data, 0o644))
}

func fullFS(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	red := pngBytes(t, color.RGBA{R: 255, A: 255})
	for _, name := range []string{"dog.png", "cat.png", "fox.png"} {
		writeFile(t, fs, filepath.Join("game", "animals", name), red)
	}
	writeFile(t, fs, filepath.Join("game", "animals", "README.txt"), []byte("not an image"))
	require.NoError(t, fs.MkdirAll(filepath.Join("game", "animals", "nested.png"), 0o755))

	for _, name := range []string{"congrats.png", "you_lost.png", "tie.png"} {
		writeFile(t, fs, filepath.Join("game", name), red)
	}
	writeFile(t, fs, filepath.Join("game", "collect.wav"), []byte("RIFF"))
	return fs
}

func TestLoad(t *testing.T) {
	pack, err := Load(fullFS(t), paths)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog", "fox"}, pack.Identities())
	assert.NotNil(t, pack.Win)
	assert.NotNil(t, pack.Lose)
	assert.NotNil(t, pack.Tie)
	assert.Equal(t, []byte("RIFF"), pack.Sound)

	img, ok := pack.Face("dog")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	_, ok = pack.Face("owl")
	assert.False(t, ok)
}

func TestLoadEmptyIdentityDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join("game", "animals"), 0o755))
	writeFile(t, fs, filepath.Join("game", "animals", "notes.txt"), []byte("x"))

	_, err := Load(fs, paths)
	assert.ErrorIs(t, err, ErrNoIdentities)
}

func TestLoadMissingIdentityDir(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identity directory")
}

func TestLoadDuplicateIdentity(t *testing.T) {
	fs := fullFS(t)
	writeFile(t, fs, filepath.Join("game", "animals", "cat.jpg"), []byte("jpeg"))

	_, err := Load(fs, paths)
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestLoadFailures(t *testing.T) {
	t.Run("corrupt face", func(t *testing.T) {
		fs := fullFS(t)
		writeFile(t, fs, filepath.Join("game", "animals", "owl.png"), []byte("garbage"))
		_, err := Load(fs, paths)
		assert.ErrorContains(t, err, "owl.png")
	})
	t.Run("missing result image", func(t *testing.T) {
		fs := fullFS(t)
		require.NoError(t, fs.Remove(filepath.Join("game", "tie.png")))
		_, err := Load(fs, paths)
		assert.Error(t, err)
	})
	t.Run("missing sound", func(t *testing.T) {
		fs := fullFS(t)
		require.NoError(t, fs.Remove(filepath.Join("game", "collect.wav")))
		_, err := Load(fs, paths)
		assert.ErrorContains(t, err, "sound")
	})
}
