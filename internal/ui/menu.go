package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MenuSlideDuration is how long, in seconds, the menu takes to open or close.
const MenuSlideDuration = 0.5

// MenuSlide animates the horizontal position of the menu panel between its
// open and closed positions.
type MenuSlide struct {
	openX   float32
	closedX float32
	x       float32
	open    bool
	tween   *gween.Tween
}

// NewMenuSlide returns an open menu.
func NewMenuSlide(openX, closedX float32) *MenuSlide {
	return &MenuSlide{openX: openX, closedX: closedX, x: openX, open: true}
}

// Open starts sliding the menu in.
func (m *MenuSlide) Open() { m.slideTo(true) }

// Close starts sliding the menu out.
func (m *MenuSlide) Close() { m.slideTo(false) }

// Toggle reverses the current direction.
func (m *MenuSlide) Toggle() { m.slideTo(!m.open) }

// IsOpen reports the direction the menu is open or opening towards.
func (m *MenuSlide) IsOpen() bool { return m.open }

// Animating reports whether a slide is in progress.
func (m *MenuSlide) Animating() bool { return m.tween != nil }

// X returns the current panel position.
func (m *MenuSlide) X() float32 { return m.x }

// Update advances the slide by dt seconds and returns the new position.
func (m *MenuSlide) Update(dt float32) float32 {
	if m.tween == nil {
		return m.x
	}
	x, done := m.tween.Update(dt)
	m.x = x
	if done {
		m.x = m.target()
		m.tween = nil
	}
	return m.x
}

func (m *MenuSlide) slideTo(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	m.tween = gween.New(m.x, m.target(), MenuSlideDuration, ease.OutCubic)
}

func (m *MenuSlide) target() float32 {
	if m.open {
		return m.openX
	}
	return m.closedX
}
