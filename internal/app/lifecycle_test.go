package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okatenko/teleop/internal/protocol"
)

func TestPingRepliesPong(t *testing.T) {
	a := NewAuthority()
	conn := bind(a, "c1")

	a.Ping("c1")

	require.Len(t, conn.ofType(t, protocol.EvPong), 1)
}

func TestBotDisconnectCleanup(t *testing.T) {
	a := NewAuthority()
	bind(a, "bot-1")
	opConn := bind(a, "op-1")
	registerOperator(a, "op-1", "o1", "Alice")
	registerBot(a, "bot-1", "b1", "Rover")
	a.RequestControl("op-1", "b1")
	opConn.reset()

	a.Disconnect("bot-1")

	gone := opConn.ofType(t, protocol.EvBotDisconnected)
	require.Len(t, gone, 1)
	require.Equal(t, "b1", gone[0]["botId"])

	lists := opConn.ofType(t, protocol.EvBotListUpdate)
	require.Len(t, lists, 1)
	require.Empty(t, lists[0]["bots"])

	// The record is gone; a fresh request is denied.
	a.RequestControl("op-1", "b1")
	denied := opConn.ofType(t, protocol.EvControlDenied)
	require.Len(t, denied, 1)
	require.Equal(t, protocol.ReasonNotFound, denied[0]["reason"])
}

func TestOperatorDisconnectNotifiesBotTwice(t *testing.T) {
	a := NewAuthority()
	botConn := bind(a, "bot-1")
	bind(a, "op-1")
	registerBot(a, "bot-1", "b1", "Rover")
	registerOperator(a, "op-1", "o1", "Alice")
	a.RequestControl("op-1", "b1")
	botConn.reset()

	a.Disconnect("op-1")

	// Operator and control-tag cleanup both fire: the clear is a no-op
	// the second time, but the notification is at-least-once.
	require.Len(t, botConn.ofType(t, protocol.EvControllerDisconnected), 2)

	info, ok := a.Bot("b1")
	require.True(t, ok)
	require.False(t, info.HasController)
}

func TestUnregisteredControllerDisconnectNotifiesOnce(t *testing.T) {
	a := NewAuthority()
	botConn := bind(a, "bot-1")
	bind(a, "c1")
	registerBot(a, "bot-1", "b1", "Rover")
	// A connection may hold control without registering as an operator.
	a.RequestControl("c1", "b1")
	botConn.reset()

	a.Disconnect("c1")

	require.Len(t, botConn.ofType(t, protocol.EvControllerDisconnected), 1)
	info, _ := a.Bot("b1")
	require.False(t, info.HasController)
}

func TestDisconnectUnknownConnection(t *testing.T) {
	a := NewAuthority()
	a.Disconnect("never-seen")
}

func TestControlHandoffScenario(t *testing.T) {
	a := NewAuthority()
	botConn := bind(a, "bot-1")
	op1Conn := bind(a, "op-1")
	registerBot(a, "bot-1", "b1", "Rover")
	registerOperator(a, "op-1", "o1", "Alice")

	a.RequestControl("op-1", "b1")
	granted := op1Conn.ofType(t, protocol.EvControlGranted)
	require.Len(t, granted, 1)
	require.Equal(t, "b1", granted[0]["botId"])
	connected := botConn.ofType(t, protocol.EvControllerConnected)
	require.Len(t, connected, 1)
	require.Equal(t, "op-1", connected[0]["controllerId"])

	a.Disconnect("op-1")
	require.NotEmpty(t, botConn.ofType(t, protocol.EvControllerDisconnected))

	op2Conn := bind(a, "op-2")
	registerOperator(a, "op-2", "o2", "Bob")
	a.RequestControl("op-2", "b1")
	require.Len(t, op2Conn.ofType(t, protocol.EvControlGranted), 1)
}
