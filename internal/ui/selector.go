package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterCandidates filters a candidate source by case-insensitive substring
// match, preserving source order
func FilterCandidates(source []string, term string) []string {
	var matches []string
	lower := strings.ToLower(term)
	for _, candidate := range source {
		if strings.Contains(strings.ToLower(candidate), lower) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// FilterUTF8Locales filters like FilterCandidates but additionally restricts
// results to UTF-8 tagged entries
func FilterUTF8Locales(source []string, term string) []string {
	var utf8 []string
	for _, candidate := range source {
		if strings.Contains(candidate, "UTF-8") {
			utf8 = append(utf8, candidate)
		}
	}
	return FilterCandidates(utf8, term)
}

// ParseSelection parses a 1-based numeric selection against a list of the
// given length. Returns the 1-based index on success.
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", input)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("selection out of range 1-%d: %d", count, n)
	}
	return n, nil
}

// Selector turns a free-text search against a large system-provided
// enumeration into a single operator-chosen value.
type Selector struct {
	ui *UI

	// Source returns the candidate enumeration. It is re-queried on every
	// search attempt; nothing is retained between attempts.
	Source func() ([]string, error)

	// Filter narrows the source by a search term. Defaults to FilterCandidates.
	Filter func(source []string, term string) []string

	// SearchPrompt labels the search input, e.g. "Search timezones".
	SearchPrompt string

	// prompt reads one line of operator input. Defaults to the interactive
	// UI prompt; tests script it.
	prompt func(label string) (string, error)
}

// NewSelector creates a Selector over the given source
func NewSelector(ui *UI, searchPrompt string, source func() ([]string, error)) *Selector {
	s := &Selector{
		ui:           ui,
		Source:       source,
		Filter:       FilterCandidates,
		SearchPrompt: searchPrompt,
	}
	s.prompt = func(label string) (string, error) {
		return ui.PromptInput(label, "")
	}
	return s
}

// Choose runs the search-filter-select loop until the operator picks a value.
//
// An empty search term re-prompts without consulting the source. An empty
// filter result reports "no match" and restarts from the search. An invalid
// numeric selection re-prompts the number only, without re-filtering.
func (s *Selector) Choose() (string, error) {
	for {
		term, err := s.prompt(s.SearchPrompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(term) == "" {
			s.ui.Warning("Search term cannot be empty")
			continue
		}

		source, err := s.Source()
		if err != nil {
			return "", fmt.Errorf("failed to load candidates: %w", err)
		}

		matches := s.Filter(source, strings.TrimSpace(term))
		if len(matches) == 0 {
			s.ui.Warningf("No match for %q, try another search", term)
			continue
		}

		s.ui.Print("")
		s.ui.Numbered(matches)
		s.ui.Print("")

		for {
			input, err := s.prompt(fmt.Sprintf("Selection [1-%d]", len(matches)))
			if err != nil {
				return "", err
			}
			n, err := ParseSelection(input, len(matches))
			if err != nil {
				s.ui.Errorf("Invalid selection: %v", err)
				continue
			}
			return matches[n-1], nil
		}
	}
}
