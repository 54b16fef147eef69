package topics

import "strings"

// Renderer turns raw topic content into what is printed. ext is the topic
// file's extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(content string, ext string) string

// Render calls f
func (f RendererFunc) Render(content string, ext string) string {
	return f(content, ext)
}

// PlainRenderer prints topics as written, newline terminated
type PlainRenderer struct{}

// Render returns content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, ext string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
