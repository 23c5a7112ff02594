// SPDX-License-Identifier: Apache-2.0

package font

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/basicfont"
)

// MaxFonts is the capacity of a Manager.
const MaxFonts = 16

// System is the slot NewDefaultManager installs the built-in font in.
const System ID = 0

var (
	// ErrFontListFull is returned by Add when every slot is taken.
	ErrFontListFull = errors.New("font: font list full")
	// ErrInvalidFontID is returned for a slot that holds no font.
	ErrInvalidFontID = errors.New("font: invalid font id")
)

// ID addresses a slot of a Manager.
type ID int8

// Manager is a fixed table of fonts. It performs no locking.
type Manager struct {
	fonts [MaxFonts]*Font
	n     int
}

// NewManager returns an empty table.
func NewManager() *Manager {
	return &Manager{}
}

// NewDefaultManager returns a table whose System slot holds SystemFont.
func NewDefaultManager() *Manager {
	m := NewManager()
	m.fonts[System] = SystemFont()
	m.n = 1
	return m
}

// Add stores f in the lowest free slot.
func (m *Manager) Add(f *Font) (ID, error) {
	if err := f.Validate(); err != nil {
		return -1, err
	}
	for i, slot := range m.fonts {
		if slot == nil {
			m.fonts[i] = f
			m.n++
			return ID(i), nil
		}
	}
	return -1, ErrFontListFull
}

// Remove frees a slot so that a later Add may reuse it.
func (m *Manager) Remove(id ID) error {
	if !m.valid(id) {
		return fmt.Errorf("%w: %d", ErrInvalidFontID, id)
	}
	m.fonts[id] = nil
	m.n--
	return nil
}

// Get returns the font in a slot.
func (m *Manager) Get(id ID) (*Font, error) {
	if !m.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFontID, id)
	}
	return m.fonts[id], nil
}

// Len returns the number of occupied slots.
func (m *Manager) Len() int {
	return m.n
}

func (m *Manager) valid(id ID) bool {
	return id >= 0 && int(id) < MaxFonts && m.fonts[id] != nil
}

var systemFont = sync.OnceValue(func() *Font {
	f, err := FromFace(basicfont.Face7x13, WithFixedMetrics(), WithName("system"))
	if err != nil {
		panic(fmt.Sprintf("font: building system font: %v", err))
	}
	return f
})

// SystemFont returns the built-in 7x13 monospaced font.
func SystemFont() *Font {
	return systemFont()
}
