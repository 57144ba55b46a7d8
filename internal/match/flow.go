package match

import "sync"

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFallback
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Flow tracks the match request of one presenter. Each Start supersedes the previous request;
// only the result of the latest one is applied.
type Flow struct {
	mu     sync.Mutex
	state  State
	seq    uint64
	result Result
}

func NewFlow() *Flow {
	return &Flow{}
}

// Start stamps req with a fresh sequence number and moves the flow to Loading.
func (f *Flow) Start(req Request) Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.state = StateLoading
	req.Seq = f.seq

	return req
}

// Complete applies res if it belongs to the latest request and reports whether it did.
func (f *Flow) Complete(res Result) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateLoading || res.Seq != f.seq {
		return false
	}

	f.result = res
	f.state = StateSuccess

	if res.Source == SourceFallback {
		f.state = StateFallback
	}

	return true
}

// Reset returns the flow to Idle once results are dismissed. Any request still in flight is
// discarded when it completes.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.state = StateIdle
	f.result = Result{}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Result returns the last applied result.
func (f *Flow) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.result
}
