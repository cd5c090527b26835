package holdem

// ActionKind identifies a player action
type ActionKind int

// constants for ActionKind. ActionUnknown is the zero value so an
// unrecognized inbound action falls into the no-op branch of every dispatch.
const (
	ActionUnknown ActionKind = iota
	ActionSeat
	ActionLeave
	ActionStart
	ActionCheck
	ActionBet
	ActionCall
	ActionRaise
	ActionFold
	ActionShowdown
	ActionMuck
	ActionReset
)

var actionKindByName = map[string]ActionKind{
	"seat":     ActionSeat,
	"leave":    ActionLeave,
	"start":    ActionStart,
	"check":    ActionCheck,
	"bet":      ActionBet,
	"call":     ActionCall,
	"raise":    ActionRaise,
	"fold":     ActionFold,
	"showdown": ActionShowdown,
	"muck":     ActionMuck,
	"reset":    ActionReset,
}

func (k ActionKind) String() string {
	for name, kind := range actionKindByName {
		if kind == k {
			return name
		}
	}

	return "unknown"
}

// Action is a single inbound player action.
// Amount is the bet/raise amount, or the seat index for seat and leave.
type Action struct {
	Kind     ActionKind
	ClientID string
	Name     string
	Amount   int
}

// ActionMessage is the wire form of an action
type ActionMessage struct {
	Action   string `json:"action"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
}

// ActionFromMessage builds an Action from its wire form.
// An unknown action name yields ActionUnknown, which every state ignores.
func ActionFromMessage(msg ActionMessage) Action {
	return Action{
		Kind:     actionKindByName[msg.Action],
		ClientID: msg.ClientID,
		Name:     msg.Name,
		Amount:   msg.Amount,
	}
}
