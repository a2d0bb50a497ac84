package render

// Renderer writes the result of a one-shot command (inspect, verify) to the terminal
type Renderer[T any] interface {
	Render(result T) error
}
