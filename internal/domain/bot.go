// Package domain contains entities without logic, just meta-data.
package domain

type (
	BotID  string
	ConnID string
)

type BotStatus string

// Online is the only reachable status: a disconnected bot is removed,
// not transitioned.
const StatusOnline BotStatus = "online"

// Bot is a controllable remote device. Controller is the connection
// currently holding exclusive control, or "" when unowned.
type Bot struct {
	ID         BotID
	Name       string
	Conn       ConnID
	Status     BotStatus
	Controller ConnID
}

func NewBot(id BotID, name string, conn ConnID) *Bot {
	return &Bot{ID: id, Name: name, Conn: conn, Status: StatusOnline}
}
