package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"TickGate/internal/quote"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	tickSubjectPrefix   = "md.ticks."
	factorSubjectPrefix = "md.factors."
)

// NATSFeed consumes ticks the QMT-side gateway publishes on core NATS
// subjects (md.ticks.<symbol>). The NATS delivery goroutine plays the role
// of the SDK callback thread: handlers run on it and must not block.
type NATSFeed struct {
	nc  *nats.Conn
	log zerolog.Logger

	mu      sync.Mutex
	handler TickHandler
	factorH FactorHandler
	subs    map[Handle][]*nats.Subscription

	factorSub  *nats.Subscription
	nextHandle atomic.Int64
}

func NewNATSFeed(nc *nats.Conn, log zerolog.Logger) *NATSFeed {
	return &NATSFeed{
		nc:   nc,
		log:  log,
		subs: make(map[Handle][]*nats.Subscription),
	}
}

func (f *NATSFeed) RegisterTickHandler(h TickHandler) {
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
}

func (f *NATSFeed) RegisterFactorHandler(h FactorHandler) {
	f.mu.Lock()
	f.factorH = h
	f.mu.Unlock()
}

// Connect verifies the NATS session and starts the factor listener.
func (f *NATSFeed) Connect(ctx context.Context) error {
	if err := f.nc.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	sub, err := f.nc.Subscribe(factorSubjectPrefix+">", f.onFactor)
	if err != nil {
		return fmt.Errorf("subscribe factors: %w", err)
	}
	f.factorSub = sub

	f.log.Info().Str("server", f.nc.ConnectedUrl()).Msg("upstream feed connected")
	return nil
}

func (f *NATSFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.factorSub != nil {
		f.factorSub.Unsubscribe()
	}
	for _, subs := range f.subs {
		for _, s := range subs {
			s.Unsubscribe()
		}
	}
	f.subs = make(map[Handle][]*nats.Subscription)
}

// Subscribe opens one NATS subscription per symbol. Partial failures roll
// back the already-opened subscriptions.
func (f *NATSFeed) Subscribe(symbols []string) (Handle, error) {
	if len(symbols) == 0 {
		return 0, fmt.Errorf("no symbols to subscribe")
	}

	opened := make([]*nats.Subscription, 0, len(symbols))
	for _, symbol := range symbols {
		sub, err := f.nc.Subscribe(tickSubjectPrefix+symbol, f.onTick)
		if err != nil {
			for _, s := range opened {
				s.Unsubscribe()
			}
			return 0, fmt.Errorf("subscribe %s: %w", symbol, err)
		}
		opened = append(opened, sub)
	}

	h := Handle(f.nextHandle.Add(1))
	f.mu.Lock()
	f.subs[h] = opened
	f.mu.Unlock()
	return h, nil
}

func (f *NATSFeed) Unsubscribe(h Handle) error {
	f.mu.Lock()
	subs, ok := f.subs[h]
	delete(f.subs, h)
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("unknown handle %d", h)
	}
	for _, s := range subs {
		if err := s.Unsubscribe(); err != nil {
			f.log.Warn().Err(err).Msg("unsubscribe failed")
		}
	}
	return nil
}

func (f *NATSFeed) onTick(msg *nats.Msg) {
	f.mu.Lock()
	handler := f.handler
	f.mu.Unlock()
	if handler == nil {
		return
	}

	var t quote.Tick
	if err := json.Unmarshal(msg.Data, &t); err != nil {
		f.log.Warn().Err(err).Str("subject", msg.Subject).Msg("drop undecodable tick")
		return
	}
	handler(t)
}

func (f *NATSFeed) onFactor(msg *nats.Msg) {
	f.mu.Lock()
	factorH := f.factorH
	f.mu.Unlock()
	if factorH == nil {
		return
	}

	var payload struct {
		Symbol string  `json:"symbol"`
		Front  float64 `json:"front"`
		Back   float64 `json:"back"`
	}
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		f.log.Warn().Err(err).Str("subject", msg.Subject).Msg("drop undecodable factor")
		return
	}
	factorH(payload.Symbol, quote.Factor{Front: payload.Front, Back: payload.Back})
}

// ConnectNATS establishes the NATS connection used by the feed and trader.
func ConnectNATS(url string, log zerolog.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}
