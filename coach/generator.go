package coach

// Generator is anything that consumes queued work: start it, feed it, close
// it.
type Generator[T any] interface {
	Start()
	Add(T) error
	Close()
}
