package app

import (
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// RegisterBot inserts or overwrites the bot record for the caller's
// connection and broadcasts the refreshed bot list to everyone.
// Re-registering an identity replaces the prior record: a returning bot
// loses any previous controller linkage and callers must re-establish it.
func (a *Authority) RegisterBot(id domain.ConnID, p protocol.RegisterBot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	botID := domain.BotID(p.BotID)
	if prev, ok := a.bots[botID]; ok {
		// Identity takeover: the previous connection keeps no claim on
		// this identity, so its disconnect must not tear down the new
		// record.
		if s, ok := a.sessions[prev.Conn]; ok && s.Bot == botID {
			s.Bot = ""
		}
		a.clearControllerLocked(prev)
	}

	a.bots[botID] = domain.NewBot(botID, p.Name, id)
	if s, ok := a.sessions[id]; ok {
		s.Bot = botID
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("bot", p.BotID).Str("name", p.Name).Msg("bot registered")

	a.emitAll(protocol.BotList{Type: protocol.EvBotListUpdate, Bots: a.botInfosLocked()})
}

// RegisterOperator inserts or overwrites the operator record for the
// caller's connection and sends the current bot list to the caller only.
func (a *Authority) RegisterOperator(id domain.ConnID, p protocol.RegisterOperator) {
	a.mu.Lock()
	defer a.mu.Unlock()

	opID := domain.OperatorID(p.OperatorID)
	if prev, ok := a.operators[opID]; ok {
		if s, ok := a.sessions[prev.Conn]; ok && s.Operator == opID {
			s.Operator = ""
		}
	}

	a.operators[opID] = domain.NewOperator(opID, p.Name, id)
	if s, ok := a.sessions[id]; ok {
		s.Operator = opID
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("operator", p.OperatorID).Str("name", p.Name).Msg("operator registered")

	a.emit(id, protocol.BotList{Type: protocol.EvBotList, Bots: a.botInfosLocked()})
}
