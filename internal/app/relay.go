package app

import (
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// The offer/answer/candidate paths are unauthenticated handshake relays:
// control is not yet established while peers are still negotiating, so
// the only check is whatever the transport layer provides. Delivering to
// a nonexistent target is a silent no-op.

func (a *Authority) RelayOffer(id domain.ConnID, p protocol.Offer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emit(domain.ConnID(p.TargetID), protocol.OfferRelay{
		Type:  protocol.EvWebRTCOffer,
		From:  string(id),
		Offer: p.Offer,
		BotID: p.BotID,
	})
}

func (a *Authority) RelayAnswer(id domain.ConnID, p protocol.Answer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emit(domain.ConnID(p.TargetID), protocol.AnswerRelay{
		Type:   protocol.EvWebRTCAnswer,
		From:   string(id),
		Answer: p.Answer,
	})
}

func (a *Authority) RelayCandidate(id domain.ConnID, p protocol.Candidate) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.emit(domain.ConnID(p.TargetID), protocol.CandidateRelay{
		Type:      protocol.EvICECandidate,
		From:      string(id),
		Candidate: p.Candidate,
	})
}

// MotorCommand is the one relay path gated on control ownership: only the
// bot's current controller may drive it. The command itself is an opaque
// blob forwarded untouched.
func (a *Authority) MotorCommand(id domain.ConnID, p protocol.MotorCommand) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.bots[domain.BotID(p.BotID)]
	if !ok {
		a.emit(id, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.ReasonNotFound})
		return
	}
	if b.Controller != id {
		log.Warn().Str("module", "app.relay").Str("conn", string(id)).Str("bot", p.BotID).Msg("motor command without control")
		a.emit(id, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgNoControlPermission})
		return
	}

	a.emit(b.Conn, protocol.MotorCommandRelay{
		Type:    protocol.EvMotorCommand,
		From:    string(id),
		Command: p.Command,
	})
}
