package render

// Renderer turns a use case result into terminal output.
type Renderer[T any] interface {
	Render(result T) error
}
