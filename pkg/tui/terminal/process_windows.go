// ABOUTME: Windows stub for ProcessTerminal resize delivery
// ABOUTME: Console resize events need ReadConsoleInput, which the reader does not consume

//go:build windows

package terminal

func (t *ProcessTerminal) watchResize(func(width, height int)) func() {
	return func() {}
}
