// Package service provides rendering helpers for the UI.
package service

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(markdown string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a GlamourRenderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders markdown with auto-detected terminal styling.
func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
