package agent

import (
	"context"
	"errors"

	"splendor/game"
	"splendor/searcher"

	"github.com/rs/zerolog/log"
)

var ErrNoGame = errors.New("request has no game")

// Request asks a worker for the next action of g's active player. A positive
// Depth overrides the worker's configured depth for this request only.
type Request struct {
	Game  *game.Game `json:"game"`
	Depth int        `json:"depth,omitempty"`
}

type Response struct {
	Action  game.Action            `json:"action"`
	Found   bool                   `json:"found"`
	Depth   int                    `json:"depth"`
	Metrics searcher.SearchMetrics `json:"metrics"`
	Error   string                 `json:"error,omitempty"`
}

// Worker serves search requests one at a time, off the caller's goroutine.
type Worker struct {
	agent     Agent
	requests  chan Request
	responses chan Response
}

func NewWorker(a Agent) *Worker {
	return &Worker{
		agent:     a,
		requests:  make(chan Request),
		responses: make(chan Response, 1),
	}
}

// Requests is closed by the caller when there is no more work.
func (w *Worker) Requests() chan<- Request { return w.requests }

// Responses is closed when Run returns.
func (w *Worker) Responses() <-chan Response { return w.responses }

// Run answers requests until ctx is done or Requests is closed.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.responses)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-w.requests:
			if !ok {
				return nil
			}
			resp, err := w.Handle(req)
			if err != nil {
				log.Warn().Err(err).Msg("rejecting search request")
				resp = Response{Error: err.Error()}
			}
			select {
			case w.responses <- resp:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Handle answers a single request on the calling goroutine.
func (w *Worker) Handle(req Request) (Response, error) {
	if req.Game == nil || len(req.Game.Players) == 0 {
		return Response{}, ErrNoGame
	}

	depth, restore := overrideDepth(w.agent, req.Depth)
	defer restore()

	var resp Response
	if !req.Game.Over() {
		resp.Action, resp.Found = w.agent.FindMove(req.Game)
	}
	resp.Depth = depth
	if m, ok := w.agent.(Metered); ok {
		resp.Metrics = m.Last()
	}
	return resp, nil
}

// overrideDepth sets the depth of a searching agent when depth is positive and
// returns the effective depth with a function undoing the change.
func overrideDepth(a Agent, depth int) (int, func()) {
	var field *int
	switch a := a.(type) {
	case *AlphaBeta:
		field = &a.Depth
	case *MaxN:
		field = &a.Depth
	case *Weighted:
		field = &a.Depth
	default:
		return 0, func() {}
	}

	old := *field
	if depth > 0 {
		*field = depth
	}
	effective := max(*field, 1)
	return effective, func() { *field = old }
}
