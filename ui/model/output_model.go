package model

import (
	"github.com/soocke/region-crop-go/export"
)

// OutputModel holds the current list of processed images. Processing
// replaces the whole list; entries may be deleted individually afterwards.
// The zero value is empty and usable.
type OutputModel struct {
	items []export.ProcessedImage
}

func NewOutputModel() *OutputModel { return &OutputModel{} }

// Replace swaps the previous artifact list for a fresh one.
func (m *OutputModel) Replace(items []export.ProcessedImage) {
	if m == nil {
		return
	}
	m.items = items
}

// Items returns the artifacts in region order.
func (m *OutputModel) Items() []export.ProcessedImage {
	if m == nil {
		return nil
	}
	return m.items
}

// Len returns the number of artifacts.
func (m *OutputModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Delete removes a single artifact by id. Unknown ids are ignored.
func (m *OutputModel) Delete(id string) {
	if m == nil {
		return
	}
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return
		}
	}
}

// Clear drops every artifact. Used by "start over".
func (m *OutputModel) Clear() {
	if m == nil {
		return
	}
	m.items = nil
}
