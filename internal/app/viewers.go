package app

import (
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// JoinViewer subscribes the caller's connection to a bot's viewer room.
// The room is created lazily; membership has set semantics so a repeated
// join is harmless. Media delivery itself is negotiated peer-to-peer via
// the signaling relay, never through the authority.
func (a *Authority) JoinViewer(id domain.ConnID, botID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.bots[domain.BotID(botID)]
	if !ok {
		a.emit(id, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.ReasonNotFound})
		return
	}

	set, ok := a.viewers[b.ID]
	if !ok {
		set = make(map[domain.ConnID]struct{})
		a.viewers[b.ID] = set
	}
	set[id] = struct{}{}
	log.Info().Str("module", "app.viewers").Str("conn", string(id)).Str("bot", botID).Int("viewers", len(set)).Msg("viewer joined")

	a.emit(id, protocol.JoinedAsViewer{Type: protocol.EvJoinedAsViewer, BotID: botID})
}

// ViewerCount reports the size of a bot's viewer room.
func (a *Authority) ViewerCount(botID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.viewers[domain.BotID(botID)])
}
