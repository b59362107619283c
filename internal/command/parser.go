// Package command turns raw input lines into typed commands.
package command

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// KeywordParser matches input lines against keyword patterns.
type KeywordParser struct {
	log   *logger.Logger
	rules []rule
}

type rule struct {
	regex *regexp.Regexp
	typ   domain.CommandType
	// build extracts Payload and Arg from the submatches. Nil means the
	// command takes no arguments.
	build func(m []string) (payload, arg string)
}

func first(m []string) (string, string)  { return strings.TrimSpace(m[1]), "" }
func second(m []string) (string, string) { return strings.TrimSpace(m[2]), "" }

// NewKeywordParser creates a parser with the default keyword set.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log.With("parser")}
	p.rules = []rule{
		{regexp.MustCompile(`(?i)^(?:search|s|find)\s+(.+)$`), domain.CommandSearch, first},
		{regexp.MustCompile(`(?i)^(?:page|p)\s+(\d+)$`), domain.CommandPage, first},
		{regexp.MustCompile(`(?i)^(next|prev)$`), domain.CommandPage, func(m []string) (string, string) {
			return strings.ToLower(m[1]), ""
		}},
		{regexp.MustCompile(`(?i)^open\s+#?(\S+)$`), domain.CommandOpen, first},
		{regexp.MustCompile(`^#(\S+)$`), domain.CommandOpen, first},
		{regexp.MustCompile(`^(\d{1,2})$`), domain.CommandSelect, first},
		{regexp.MustCompile(`(?i)^(\+|more|inc)$`), domain.CommandServingsIncrease, nil},
		{regexp.MustCompile(`(?i)^(-|less|dec)$`), domain.CommandServingsDecrease, nil},
		{regexp.MustCompile(`(?i)^(add|cart)$`), domain.CommandAddToList, nil},
		{regexp.MustCompile(`(?i)^(del|rm)\s+(\S+)$`), domain.CommandDeleteItem, second},
		{regexp.MustCompile(`(?i)^set\s+(\S+)\s+(.+)$`), domain.CommandUpdateCount, func(m []string) (string, string) {
			return m[1], strings.TrimSpace(m[2])
		}},
		{regexp.MustCompile(`(?i)^(like|love)$`), domain.CommandToggleLike, nil},
		{regexp.MustCompile(`(?i)^list$`), domain.CommandShowList, nil},
		{regexp.MustCompile(`(?i)^likes$`), domain.CommandShowLikes, nil},
		{regexp.MustCompile(`(?i)^export\s+(.+)$`), domain.CommandExport, first},
		{regexp.MustCompile(`(?i)^(directions|dir)$`), domain.CommandDirections, nil},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.CommandHelp, nil},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.CommandQuit, nil},
	}
	return p
}

// Parse converts one input line into a command. Unmatched input yields
// CommandUnknown with the trimmed line as payload.
func (p *KeywordParser) Parse(input string) domain.Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return domain.Command{Type: domain.CommandUnknown}
	}

	for _, r := range p.rules {
		m := r.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		cmd := domain.Command{Type: r.typ}
		if r.build != nil {
			cmd.Payload, cmd.Arg = r.build(m)
		}
		p.log.Debug("%q -> %s %q %q", trimmed, cmd.Type, cmd.Payload, cmd.Arg)
		return cmd
	}

	p.log.Debug("no match for %q", trimmed)
	return domain.Command{Type: domain.CommandUnknown, Payload: trimmed}
}

// Help lists the accepted commands, one per line.
func Help() []string {
	return []string{
		"search <query>      find recipes (also: s, find)",
		"page <n> | next | prev   browse result pages",
		"<n>                 open result n of the current page",
		"open <id> | #<id>   open a recipe by id",
		"+ | -               more or fewer servings",
		"add                 add ingredients to the shopping list",
		"del <item>          remove a list item (number or id)",
		"set <item> <count>  change a list item's count",
		"like                like or unlike the open recipe",
		"list | likes        show the shopping list or your likes",
		"directions          fetch cooking steps from the source page",
		"export <file>       save the list as .csv or .xlsx",
		"quit                leave",
	}
}
