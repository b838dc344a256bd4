package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/guttosm/grimoire-service/internal/domain/model"
)

var (
	deckLineRegex = regexp.MustCompile(`^(\d+)[xX]?\s+(.+?)\s*$`)
	spaceRun      = regexp.MustCompile(`\s+`)
	lineBreak     = regexp.MustCompile(`\r?\n`)
)

// ParseDeckList parses lines such as "4 Lightning Bolt" or "2x Island".
// Blank lines and lines starting with "#" or "//" are skipped. Repeated
// names are merged and the result is sorted by card name. Lines that do
// not parse are reported in Errors with their 1-based line number.
func ParseDeckList(raw string) model.ParsedDeckList {
	counts := make(map[string]int)
	errs := []string{}

	for i, line := range lineBreak.Split(raw, -1) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		m := deckLineRegex.FindStringSubmatch(line)
		if m == nil {
			errs = append(errs, fmt.Sprintf(`Line %d: could not parse "%s"`, i+1, line))
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			errs = append(errs, fmt.Sprintf(`Line %d: could not parse "%s"`, i+1, line))
			continue
		}
		// Double-faced names keep their "//" separator
		name := spaceRun.ReplaceAllString(strings.TrimSpace(m[2]), " ")
		counts[name] += count
	}

	cards := make([]model.DeckCard, 0, len(counts))
	total := 0
	for name, count := range counts {
		cards = append(cards, model.DeckCard{Name: name, Count: count})
		total += count
	}
	sort.Slice(cards, func(i, j int) bool {
		return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name) ||
			(strings.EqualFold(cards[i].Name, cards[j].Name) && cards[i].Name < cards[j].Name)
	})

	return model.ParsedDeckList{Cards: cards, TotalCards: total, Errors: errs}
}
