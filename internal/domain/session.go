package domain

// Session carries the per-connection tags the lifecycle cleanup unwinds
// on disconnect, so no record scan is needed. Empty string means the tag
// is not set.
type Session struct {
	Bot      BotID
	Operator OperatorID
	Controls BotID
}
