package command

import (
	"testing"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)

	tests := []struct {
		input       string
		wantType    domain.CommandType
		wantPayload string
		wantArg     string
	}{
		// Search
		{"search pizza", domain.CommandSearch, "pizza", ""},
		{"s  pasta with tomato ", domain.CommandSearch, "pasta with tomato", ""},
		{"FIND curry", domain.CommandSearch, "curry", ""},

		// Paging
		{"page 2", domain.CommandPage, "2", ""},
		{"p 3", domain.CommandPage, "3", ""},
		{"next", domain.CommandPage, "next", ""},
		{"Prev", domain.CommandPage, "prev", ""},

		// Opening
		{"open 47746", domain.CommandOpen, "47746", ""},
		{"open #47746", domain.CommandOpen, "47746", ""},
		{"#47746", domain.CommandOpen, "47746", ""},
		{"3", domain.CommandSelect, "3", ""},
		{"10", domain.CommandSelect, "10", ""},

		// Servings
		{"+", domain.CommandServingsIncrease, "", ""},
		{"more", domain.CommandServingsIncrease, "", ""},
		{"-", domain.CommandServingsDecrease, "", ""},
		{"dec", domain.CommandServingsDecrease, "", ""},

		// List
		{"add", domain.CommandAddToList, "", ""},
		{"cart", domain.CommandAddToList, "", ""},
		{"del 2", domain.CommandDeleteItem, "2", ""},
		{"rm 5f0c-id", domain.CommandDeleteItem, "5f0c-id", ""},
		{"set 1 2.5", domain.CommandUpdateCount, "1", "2.5"},
		{"list", domain.CommandShowList, "", ""},
		{"export list.xlsx", domain.CommandExport, "list.xlsx", ""},

		// Likes
		{"like", domain.CommandToggleLike, "", ""},
		{"love", domain.CommandToggleLike, "", ""},
		{"likes", domain.CommandShowLikes, "", ""},

		// Misc
		{"dir", domain.CommandDirections, "", ""},
		{"help", domain.CommandHelp, "", ""},
		{"?", domain.CommandHelp, "", ""},
		{"quit", domain.CommandQuit, "", ""},
		{"q", domain.CommandQuit, "", ""},

		// Unknown
		{"", domain.CommandUnknown, "", ""},
		{"search", domain.CommandUnknown, "search", ""},
		{"123", domain.CommandUnknown, "123", ""},
		{"make me a sandwich", domain.CommandUnknown, "make me a sandwich", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parser.Parse(tt.input)
			if got.Type != tt.wantType {
				t.Fatalf("Parse(%q) type = %s, want %s", tt.input, got.Type, tt.wantType)
			}
			if got.Payload != tt.wantPayload || got.Arg != tt.wantArg {
				t.Fatalf("Parse(%q) = %q %q, want %q %q", tt.input, got.Payload, got.Arg, tt.wantPayload, tt.wantArg)
			}
		})
	}
}

func TestHelpNonEmpty(t *testing.T) {
	if len(Help()) == 0 {
		t.Fatal("help text is empty")
	}
}
