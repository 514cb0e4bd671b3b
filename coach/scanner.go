package coach

import (
	"errors"
	"log"
	"sync"

	"github.com/garlicgarrison/chess-motif-engine/analysispool"
	"github.com/garlicgarrison/chess-motif-engine/board"
	"github.com/garlicgarrison/chess-motif-engine/motif"
)

var ErrQueueFull = errors.New("queue full")

// Callback receives each finished analysis. The scanner hands over
// structured motif records only; turning them into coaching language is the
// consumer's job.
type Callback func(fen string, analysis *motif.Analysis)

/*
	Scanner drains a queue of positions through a pool of analyzers. Each
	position is analyzed at most once per scanner; repeats are dropped at
	Add time.
*/
type Scanner struct {
	pool  *analysispool.Pool
	q     chan *board.Position
	cache map[string]bool
	cb    Callback

	mutex sync.Mutex
	quit  chan bool
}

func NewScanner(pool *analysispool.Pool, queueLimit int, cb Callback) *Scanner {
	return &Scanner{
		pool:  pool,
		q:     make(chan *board.Position, queueLimit),
		cache: make(map[string]bool),
		cb:    cb,

		quit: make(chan bool),
	}
}

func (s *Scanner) Start() {
	go func() {
		for {
			quit := false
			select {
			case pos := <-s.q:
				go s.analyze(pos)
			case <-s.quit:
				log.Printf("scanner closing")
				quit = true
			}

			if quit {
				break
			}
		}
	}()
}

func (s *Scanner) Add(pos *board.Position) error {
	fen := pos.FEN()

	s.mutex.Lock()
	seen := s.cache[fen]
	s.mutex.Unlock()
	if seen {
		return nil
	}

	select {
	case s.q <- pos:
		s.mutex.Lock()
		s.cache[fen] = true
		s.mutex.Unlock()

		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Scanner) Close() {
	s.quit <- true
}

func (s *Scanner) analyze(pos *board.Position) {
	instance := s.pool.Acquire()
	defer s.pool.Release(instance)

	s.cb(pos.FEN(), instance.Analyzer.Analyze(pos))
}
