// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"errors"

	"github.com/wundergraph/go-glcd/arena"
	"github.com/wundergraph/go-glcd/font"
)

var (
	// ErrNullParams is returned when a required value is missing.
	ErrNullParams = errors.New("glcd: null parameters")
	// ErrInvalidObject is returned for an unknown or removed object id, or
	// an object with no components.
	ErrInvalidObject = errors.New("glcd: invalid object")
	// ErrTooManyComponents is returned for an object above MaxComponents.
	ErrTooManyComponents = errors.New("glcd: too many components")
	// ErrCoordsOutOfBounds is returned when geometry lies entirely off-screen.
	ErrCoordsOutOfBounds = errors.New("glcd: coordinates out of bounds")
	// ErrInvalidOrientation is returned by WithOrientation for an
	// unsupported rotation.
	ErrInvalidOrientation = errors.New("glcd: invalid orientation")
	// ErrDuringRender wraps a failure while drawing.
	ErrDuringRender = errors.New("glcd: error during render")
	// ErrDuringUnrender wraps a failure while repainting under an object.
	ErrDuringUnrender = errors.New("glcd: error during unrender")
	// ErrDuringBBoxCalc wraps a failure while computing a bounding box.
	ErrDuringBBoxCalc = errors.New("glcd: error during bounding box calculation")
	// ErrQueueFull is returned by Queue.Post when no slot is free.
	ErrQueueFull = errors.New("glcd: intent queue full")
)

// Errors shared with the lower layers.
var (
	ErrFontListFull  = font.ErrFontListFull
	ErrInvalidFontID = font.ErrInvalidFontID
	ErrNoMemory      = arena.ErrNoMemory
)
