//go:build !ebiten

package ui

import "neural-bg/internal/field"

// FieldSource exposes the live simulation state the overlay inspects.
type FieldSource interface {
	Pointer() *field.Pointer
	Pool() *field.Pool
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(FieldSource) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
