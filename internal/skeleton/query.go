package skeleton

import "strings"

// Query returns symbols matching all provided filter criteria in map order.
// Empty filter values are ignored (match all). Name is a substring match.
func (m *SymbolMap) Query(kind, name string) []Symbol {
	if m == nil {
		return nil
	}
	var result []Symbol
	for _, s := range m.Symbols {
		if kind != "" && s.Type != kind {
			continue
		}
		if name != "" && !strings.Contains(s.Name, name) {
			continue
		}
		result = append(result, s)
	}
	return result
}

// Count returns the number of symbols in the map.
func (m *SymbolMap) Count() int {
	if m == nil {
		return 0
	}
	return len(m.Symbols)
}
