package game

// Command is a discrete player intent, abstracted from physical key presses.
// The presentation layer maps keys to commands; the engine consumes them.
// Help toggling and quitting are presentation-only and never reach the engine.
type Command int

const (
	CommandNone Command = iota
	CommandClick
	CommandBuy
	CommandUp
	CommandDown
	CommandTabPassive
	CommandTabClick
	CommandTabAchievements
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandClick:
		return "Click"
	case CommandBuy:
		return "Buy"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandTabPassive:
		return "TabPassive"
	case CommandTabClick:
		return "TabClick"
	case CommandTabAchievements:
		return "TabAchievements"
	default:
		return "Unknown"
	}
}
