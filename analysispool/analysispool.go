package analysispool

import (
	"errors"
	"time"

	guuid "github.com/google/uuid"

	"github.com/garlicgarrison/chess-motif-engine/motif"
	"github.com/garlicgarrison/chess-motif-engine/tactics"
)

var (
	ErrInvalidLimit  = errors.New("pool limit must be positive")
	ErrWrongInstance = errors.New("wrong instance released")
)

/*
	The engine holds no process-wide state, so embedding it in a service is
	just a matter of giving each request its own analyzer. Pool keeps a fixed
	set of them behind a channel.
*/
type Instance struct {
	id       guuid.UUID
	Analyzer *motif.Analyzer
}

type Pool struct {
	idSet   map[guuid.UUID]bool
	pool    chan *Instance
	timeout int
}

func NewPool(values tactics.Values, limit, timeout int) (*Pool, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	idSet := make(map[guuid.UUID]bool)
	ch := make(chan *Instance, limit)

	for i := 0; i < limit; i++ {
		oracle, err := tactics.NewOracle(values)
		if err != nil {
			return nil, err
		}

		analyzer, err := motif.NewAnalyzer(oracle, values)
		if err != nil {
			return nil, err
		}

		id := guuid.New()
		idSet[id] = true
		ch <- &Instance{
			id:       id,
			Analyzer: analyzer,
		}
	}

	return &Pool{
		idSet:   idSet,
		pool:    ch,
		timeout: timeout,
	}, nil
}

func (p *Pool) Acquire() *Instance {
	for {
		select {
		case instance := <-p.pool:
			return instance
		default:
			time.Sleep(time.Duration(p.timeout) * time.Millisecond)
		}
	}
}

func (p *Pool) Release(in *Instance) error {
	_, ok := p.idSet[in.id]
	if !ok {
		return ErrWrongInstance
	}

	p.pool <- in
	return nil
}
