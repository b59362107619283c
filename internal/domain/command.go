package domain

// CommandType classifies what the user wants to do.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandSearch
	CommandPage
	CommandOpen
	CommandSelect
	CommandServingsDecrease
	CommandServingsIncrease
	CommandAddToList
	CommandDeleteItem
	CommandUpdateCount
	CommandToggleLike
	CommandShowList
	CommandShowLikes
	CommandExport
	CommandDirections
	CommandHelp
	CommandQuit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	for name, t := range commandNames {
		if t == c && name != "unknown" {
			return name
		}
	}
	return "unknown"
}

// Command is a typed user action produced by the input layer.
//
// Payload carries the primary argument: a query, a page number or
// "next" / "prev", a recipe id, a result number, an item reference or an
// export path. Arg carries the new count for CommandUpdateCount.
type Command struct {
	Type    CommandType
	Payload string
	Arg     string
}

// commandNames maps snake_case names to CommandType values.
var commandNames = map[string]CommandType{
	"search":            CommandSearch,
	"page":              CommandPage,
	"open":              CommandOpen,
	"select":            CommandSelect,
	"servings_decrease": CommandServingsDecrease,
	"servings_increase": CommandServingsIncrease,
	"add_to_list":       CommandAddToList,
	"delete_item":       CommandDeleteItem,
	"update_count":      CommandUpdateCount,
	"toggle_like":       CommandToggleLike,
	"show_list":         CommandShowList,
	"show_likes":        CommandShowLikes,
	"export":            CommandExport,
	"directions":        CommandDirections,
	"help":              CommandHelp,
	"quit":              CommandQuit,
	"unknown":           CommandUnknown,
}

// CommandFromString converts a snake_case command name to a CommandType.
// Returns CommandUnknown for unrecognized names.
func CommandFromString(name string) CommandType {
	if t, ok := commandNames[name]; ok {
		return t
	}
	return CommandUnknown
}

// Outcome reports what a controller did with a user action. Rejected
// input stays silent in the UI but is visible to callers through Ignored.
type Outcome int

const (
	// OutcomeApplied means state and view were updated.
	OutcomeApplied Outcome = iota
	// OutcomeIgnored means the input was rejected as a no-op.
	OutcomeIgnored
	// OutcomeStale means a fetch completed after a newer request and
	// its result was discarded.
	OutcomeStale
	// OutcomeFailed means an external call failed and the user was alerted.
	OutcomeFailed
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
