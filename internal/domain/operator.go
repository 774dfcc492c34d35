package domain

type OperatorID string

// Operator is a remote pilot. ControllingBot is a back-reference to the
// bot this operator currently controls, or "" when none.
type Operator struct {
	ID             OperatorID
	Name           string
	Conn           ConnID
	ControllingBot BotID
}

func NewOperator(id OperatorID, name string, conn ConnID) *Operator {
	return &Operator{ID: id, Name: name, Conn: conn}
}
