// ABOUTME: Core TUI interfaces: Component, InputHandler, Sized
// ABOUTME: Components render whole lines into a pooled RenderBuffer

package tui

// Component is the base interface for all TUI elements.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// InputHandler is implemented by components that process terminal input.
// data is one key or mouse sequence as produced by key.Split.
type InputHandler interface {
	HandleInput(data string)
}

// Sized is implemented by components that own a fixed region of the
// screen and need to know its height.
type Sized interface {
	SetSize(width, height int)
}
