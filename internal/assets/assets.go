// Package assets loads the background and character images drawn by the
// graphical frontend. Images are decoded here, independent of any renderer.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io/fs"
	"os"
)

// Image file names looked up in the asset directory.
const (
	BackgroundFile = "background.png"
	CharacterFile  = "character.png"
)

//go:embed images/*.png
var embedded embed.FS

// Images holds the decoded assets.
type Images struct {
	Background image.Image
	Character  image.Image
}

// Load decodes the images from dir, or from the built-in set when dir is
// empty. A missing or broken file in dir is an error; there is no fallback
// to the built-in images.
func Load(dir string) (Images, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "images")
		if err != nil {
			return Images{}, fmt.Errorf("embedded assets: %w", err)
		}
		return LoadFS(sub)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS decodes the images from the root of fsys.
func LoadFS(fsys fs.FS) (Images, error) {
	bg, err := decode(fsys, BackgroundFile)
	if err != nil {
		return Images{}, err
	}
	ch, err := decode(fsys, CharacterFile)
	if err != nil {
		return Images{}, err
	}
	return Images{Background: bg, Character: ch}, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
