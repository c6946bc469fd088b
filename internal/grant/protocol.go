package grant

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-fakts/internal/logger"
	"github.com/MKhiriev/go-fakts/models"
)

// State is the grant protocol's position in its two-phase exchange.
type State int

const (
	// StateIdle is the initial state, before an endpoint has been handed in.
	StateIdle State = iota
	// StateDemanding means a Demander call is in flight.
	StateDemanding
	// StateClaiming means a token was obtained and a Claimer call is in flight.
	StateClaiming
	// StateConfigured is the terminal success state: a mapping was obtained.
	StateConfigured
	// StateFailed is the terminal failure state.
	StateFailed
)

// String implements fmt.Stringer for log fields.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDemanding:
		return "demanding"
	case StateClaiming:
		return "claiming"
	case StateConfigured:
		return "configured"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Protocol drives the two-phase claim exchange for one resolved endpoint:
//
//	Idle → Demanding → Claiming → Configured | Failed
//
// A failure at either stage moves directly to Failed with the originating
// error attached; there is no automatic retry. Retrying an entire
// discovery+claim cycle is the caller's decision.
type Protocol struct {
	demander Demander
	claimer  Claimer
	logger   *logger.Logger

	mu    sync.Mutex
	state State
}

// NewProtocol wires a demander and a claimer into an idle protocol.
func NewProtocol(demander Demander, claimer Claimer, log *logger.Logger) *Protocol {
	return &Protocol{
		demander: demander,
		claimer:  claimer,
		logger:   log,
		state:    StateIdle,
	}
}

// State reports the protocol's current state.
func (p *Protocol) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Protocol) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Run executes demand then claim against the resolved endpoint and returns
// the claimed configuration mapping as a completed snapshot.
//
// Demand failures wrap ErrDemand, claim failures wrap ErrClaim, except for
// the caller's own cancellation which propagates untouched.
func (p *Protocol) Run(ctx context.Context, endpoint models.Endpoint, req *models.ClaimRequest) (models.ConfigMapping, error) {
	p.setState(StateDemanding)
	p.logger.Debug().Str("endpoint", endpoint.Name).Msg("demanding token")

	token, err := p.demander.Demand(ctx, endpoint, req)
	if err != nil {
		p.setState(StateFailed)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s", ErrDemand, err)
	}

	p.setState(StateClaiming)
	p.logger.Debug().Str("endpoint", endpoint.Name).Msg("claiming configuration")

	mapping, err := p.claimer.Claim(ctx, token, endpoint, req)
	if err != nil {
		p.setState(StateFailed)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s", ErrClaim, err)
	}

	p.setState(StateConfigured)
	p.logger.Info().
		Str("endpoint", endpoint.Name).
		Int("keys", len(mapping)).
		Msg("configuration claimed")

	return mapping, nil
}
