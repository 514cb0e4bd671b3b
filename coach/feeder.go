package coach

import (
	"time"
)

/*
	Feeder pumps values from a source into a generator. The source reports
	exhaustion through its second return; a full generator queue backs the
	feeder off instead of dropping work.
*/
type Feeder[T any] struct {
	source func() (T, bool)
	gen    Generator[T]
	quit   chan bool
}

func NewFeeder[T any](source func() (T, bool), gen Generator[T]) *Feeder[T] {
	return &Feeder[T]{
		source: source,
		gen:    gen,
		quit:   make(chan bool, 1),
	}
}

func (f *Feeder[T]) Start(timeout int) {
	go func() {
		for {
			select {
			case <-f.quit:
				return
			default:
				v, ok := f.source()
				if !ok {
					return
				}

				for f.gen.Add(v) != nil {
					time.Sleep(time.Millisecond * time.Duration(timeout))
				}
			}
		}
	}()
}

func (f *Feeder[T]) Close() {
	select {
	case f.quit <- true:
	default:
	}
}
