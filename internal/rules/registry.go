package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry = make(map[string]Rule)
	mu       sync.RWMutex
)

func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[r.ID()]; exists {
		panic(fmt.Sprintf("rule %s already registered", r.ID()))
	}
	registry[r.ID()] = r
}

// List returns all registered rules sorted by ID. Rules are applied to a
// line in this order, so IDs double as precedence: the first matching rule
// claims the line.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	var rules []Rule
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID() < rules[j].ID()
	})
	return rules
}

// Resolve selects rules by selector. An empty selector means all rules;
// otherwise the selector is a comma-separated list of rule IDs. The
// returned slice keeps List() order regardless of selector order.
func Resolve(selector string) ([]Rule, error) {
	if selector == "" {
		return List(), nil
	}

	mu.RLock()
	defer mu.RUnlock()

	wanted := make(map[string]bool)
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := registry[id]; !ok {
			return nil, fmt.Errorf("rule not found: %s", id)
		}
		wanted[id] = true
	}

	var selected []Rule
	for _, r := range registry {
		if wanted[r.ID()] {
			selected = append(selected, r)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].ID() < selected[j].ID()
	})
	return selected, nil
}
