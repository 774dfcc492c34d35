package app

import (
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// Ping answers the application-level liveness probe. The authority takes
// no action beyond the reply; timeout logic is the caller's business.
func (a *Authority) Ping(id domain.ConnID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emit(id, protocol.Pong{Type: protocol.EvPong})
}

// Disconnect unwinds everything the connection registered, in four
// independent steps: bot record, operator record, control tag, viewer
// memberships. Absence of one never blocks the next.
func (a *Authority) Disconnect(id domain.ConnID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, ok := a.sessions[id]
	if ok {
		a.cleanupBotLocked(id, sess)
		a.cleanupOperatorLocked(id, sess)
		a.cleanupControlLocked(id, sess)
	}
	for _, set := range a.viewers {
		delete(set, id)
	}
	delete(a.sessions, id)
	delete(a.conns, id)
	log.Info().Str("module", "app.lifecycle").Str("conn", string(id)).Msg("connection cleaned up")
}

func (a *Authority) cleanupBotLocked(id domain.ConnID, sess *domain.Session) {
	if sess.Bot == "" {
		return
	}
	b, ok := a.bots[sess.Bot]
	if !ok || b.Conn != id {
		// Identity was taken over by a newer connection; nothing to unwind.
		return
	}
	if b.Controller != "" {
		a.emit(b.Controller, protocol.BotDisconnected{Type: protocol.EvBotDisconnected, BotID: string(b.ID)})
	}
	a.clearControllerLocked(b)
	delete(a.bots, b.ID)
	log.Info().Str("module", "app.lifecycle").Str("conn", string(id)).Str("bot", string(b.ID)).Msg("bot removed")
	a.emitAll(protocol.BotList{Type: protocol.EvBotListUpdate, Bots: a.botInfosLocked()})
}

func (a *Authority) cleanupOperatorLocked(id domain.ConnID, sess *domain.Session) {
	if sess.Operator == "" {
		return
	}
	op, ok := a.operators[sess.Operator]
	if !ok || op.Conn != id {
		return
	}
	if op.ControllingBot != "" {
		if b, ok := a.bots[op.ControllingBot]; ok {
			b.Controller = ""
			a.emit(b.Conn, protocol.ControllerDisconnected{Type: protocol.EvControllerDisconnected})
		}
	}
	delete(a.operators, sess.Operator)
	log.Info().Str("module", "app.lifecycle").Str("conn", string(id)).Str("operator", string(op.ID)).Msg("operator removed")
}

// cleanupControlLocked re-fires for an operator that controlled a bot:
// the controller field is already cleared then, but the bot is notified
// again. Peers must treat controller_disconnected as at-least-once.
func (a *Authority) cleanupControlLocked(id domain.ConnID, sess *domain.Session) {
	if sess.Controls == "" {
		return
	}
	b, ok := a.bots[sess.Controls]
	if !ok {
		return
	}
	if b.Controller == id {
		b.Controller = ""
	}
	a.emit(b.Conn, protocol.ControllerDisconnected{Type: protocol.EvControllerDisconnected})
}
