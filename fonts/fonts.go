package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
	Mono    FontName = "mono" // fixed-width bitmap face for debug readouts
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// Load registers the bundled faces. Call once before drawing.
func Load() error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("parse go regular: %w", err)
	}
	LoadWithSize(Regular, source, 12)
	LoadWithSize(Title, source, 20)
	LoadWithSize(Small, source, 10)
	fonts[Mono] = text.NewGoXFace(basicfont.Face7x13)
	return nil
}

func LoadWithSize(name FontName, source *text.GoTextFaceSource, size float64) {
	fonts[name] = &text.GoTextFace{Source: source, Size: size}
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
