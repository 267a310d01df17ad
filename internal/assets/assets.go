// Package assets loads the card faces, result pictures and sound effect from disk.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrNoIdentities      = errors.New("no identity images found")
	ErrDuplicateIdentity = errors.New("two images share an identity")
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

// Paths locates every asset. File names are relative to Dir.
type Paths struct {
	Dir           string
	IdentitiesDir string
	WinImage      string
	LoseImage     string
	TieImage      string
	Sound         string
}

// Face is one card identity and its picture.
type Face struct {
	Identity string
	Image    image.Image
}

// Pack holds every decoded asset the game needs.
type Pack struct {
	Faces []Face
	Win   image.Image
	Lose  image.Image
	Tie   image.Image
	Sound []byte // undecoded WAV data
}

// Load reads every asset from fs. Any missing or unreadable file aborts the load.
func Load(fs afero.Fs, p Paths) (*Pack, error) {
	faces, err := loadFaces(fs, filepath.Join(p.Dir, p.IdentitiesDir))
	if err != nil {
		return nil, err
	}

	pack := &Pack{Faces: faces}
	for _, item := range []struct {
		name string
		dst  *image.Image
	}{
		{p.WinImage, &pack.Win},
		{p.LoseImage, &pack.Lose},
		{p.TieImage, &pack.Tie},
	} {
		img, err := decodeImage(fs, filepath.Join(p.Dir, item.name))
		if err != nil {
			return nil, err
		}
		*item.dst = img
	}

	pack.Sound, err = afero.ReadFile(fs, filepath.Join(p.Dir, p.Sound))
	if err != nil {
		return nil, fmt.Errorf("failed to read sound: %w", err)
	}
	return pack, nil
}

// Identities returns the identity labels in load order.
func (p *Pack) Identities() []string {
	ids := make([]string, len(p.Faces))
	for i, f := range p.Faces {
		ids[i] = f.Identity
	}
	return ids
}

// Face returns the picture for an identity.
func (p *Pack) Face(identity string) (image.Image, bool) {
	for _, f := range p.Faces {
		if f.Identity == identity {
			return f.Image, true
		}
	}
	return nil, false
}

func loadFaces(fs afero.Fs, dir string) ([]Face, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity directory %s: %w", dir, err)
	}

	names := make(map[string]string)
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || !imageExts[ext] {
			continue
		}
		identity := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if prev, ok := names[identity]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateIdentity, prev, entry.Name())
		}
		names[identity] = entry.Name()
	}

	faces := make([]Face, 0, len(names))
	for identity, name := range names {
		img, err := decodeImage(fs, filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		faces = append(faces, Face{Identity: identity, Image: img})
	}

	if len(faces) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoIdentities, dir)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i].Identity < faces[j].Identity })
	return faces, nil
}

func decodeImage(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
