package stats

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// WidthMeasurer donne la largeur en pixels d'une ligne de texte sans balises.
type WidthMeasurer interface {
	Width(line string) int
}

// FontMeasurer mesure avec une vraie police (Go Regular par défaut).
// font.Face n'est pas sûr en concurrence, d'où le mutex.
type FontMeasurer struct {
	mu   sync.Mutex
	face font.Face
}

// NewFontMeasurer charge la police Go Regular à la taille donnée (en points, 72 dpi).
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	return NewFontMeasurerFromTTF(goregular.TTF, size)
}

// NewFontMeasurerFromTTF charge une police TrueType/OpenType arbitraire.
func NewFontMeasurerFromTTF(ttf []byte, size float64) (*FontMeasurer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("taille de police invalide: %v", size)
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return &FontMeasurer{face: face}, nil
}

// Width arrondit l'avance au pixel.
func (m *FontMeasurer) Width(line string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return font.MeasureString(m.face, line).Round()
}

// Close libère la face.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face.Close()
}

// singleLineWidth : largeur d'une ligne après retrait des balises HTML et SSA.
func singleLineWidth(m WidthMeasurer, line string) int {
	return m.Width(RemoveHTMLTags(line, true))
}
