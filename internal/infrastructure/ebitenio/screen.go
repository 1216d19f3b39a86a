package ebitenio

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is the output resource scenes render into. Scenes draw on Target
// during the engine frame; Update publishes the finished frame, which the
// window shows on its next Draw.
type Screen struct {
	back       *ebiten.Image
	front      *ebiten.Image
	background color.Color
}

// NewScreen creates a screen of the given logical size.
func NewScreen(width, height int) *Screen {
	return &Screen{
		back:       ebiten.NewImage(width, height),
		front:      ebiten.NewImage(width, height),
		background: color.Black,
	}
}

// SetBackground sets the color each frame starts from.
func (s *Screen) SetBackground(c color.Color) {
	s.background = c
}

// Target returns the image scenes draw the current frame on.
func (s *Screen) Target() *ebiten.Image {
	return s.back
}

// Size returns the logical screen size.
func (s *Screen) Size() (int, int) {
	b := s.back.Bounds()
	return b.Dx(), b.Dy()
}

// Update publishes the frame and starts the next one.
func (s *Screen) Update() error {
	s.back, s.front = s.front, s.back
	s.back.Fill(s.background)
	return nil
}

// Present draws the last published frame on dst.
func (s *Screen) Present(dst *ebiten.Image) {
	dst.DrawImage(s.front, nil)
}

// Close releases the images.
func (s *Screen) Close() error {
	s.back.Deallocate()
	s.front.Deallocate()
	return nil
}
