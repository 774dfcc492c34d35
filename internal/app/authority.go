package app

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/core"
	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// Authority owns all registry, arbitration and viewer-room state behind a
// single mutex. Every inbound event is handled to completion — state
// mutation plus all resulting outbound sends — before the next one, so
// records are never observed mid-update.
type Authority struct {
	mu        sync.Mutex
	conns     map[domain.ConnID]core.SignalConnection
	sessions  map[domain.ConnID]*domain.Session
	bots      map[domain.BotID]*domain.Bot
	operators map[domain.OperatorID]*domain.Operator
	viewers   map[domain.BotID]map[domain.ConnID]struct{}
}

func NewAuthority() *Authority {
	return &Authority{
		conns:     make(map[domain.ConnID]core.SignalConnection),
		sessions:  make(map[domain.ConnID]*domain.Session),
		bots:      make(map[domain.BotID]*domain.Bot),
		operators: make(map[domain.OperatorID]*domain.Operator),
		viewers:   make(map[domain.BotID]map[domain.ConnID]struct{}),
	}
}

// Bind makes a connection addressable for outbound events. No participant
// state exists until the peer explicitly registers.
func (a *Authority) Bind(id domain.ConnID, conn core.SignalConnection) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.conns[id] = conn
	a.sessions[id] = &domain.Session{}
	log.Info().Str("module", "app.authority").Str("conn", string(id)).Msg("connection bound")
}

// emit sends one event to one connection. Requires a.mu held. Delivery to
// an unknown or disconnected target is a silent no-op; a full send buffer
// drops the frame rather than blocking the authority.
func (a *Authority) emit(id domain.ConnID, v any) {
	conn, ok := a.conns[id]
	if !ok {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.authority").Msg("marshal outbound event")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "app.authority").Str("conn", string(id)).Msg("dropped outbound event")
	}
}

// emitAll broadcasts one event to every bound connection. Requires a.mu held.
func (a *Authority) emitAll(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.authority").Msg("marshal broadcast event")
		return
	}
	for id, conn := range a.conns {
		if err := conn.TrySend(core.Frame(b)); err != nil {
			log.Warn().Err(err).Str("module", "app.authority").Str("conn", string(id)).Msg("dropped broadcast event")
		}
	}
}

// botInfosLocked snapshots the bot table for bot_list events and the REST
// surface. Requires a.mu held.
func (a *Authority) botInfosLocked() []protocol.BotInfo {
	out := make([]protocol.BotInfo, 0, len(a.bots))
	for _, b := range a.bots {
		out = append(out, protocol.BotInfo{
			ID:            string(b.ID),
			Name:          b.Name,
			Status:        string(b.Status),
			HasController: b.Controller != "",
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Bots returns a snapshot of all registered bots.
func (a *Authority) Bots() []protocol.BotInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.botInfosLocked()
}

// Bot returns a snapshot of a single bot.
func (a *Authority) Bot(id string) (protocol.BotInfo, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.bots[domain.BotID(id)]
	if !ok {
		return protocol.BotInfo{}, false
	}
	return protocol.BotInfo{
		ID:            string(b.ID),
		Name:          b.Name,
		Status:        string(b.Status),
		HasController: b.Controller != "",
	}, true
}
