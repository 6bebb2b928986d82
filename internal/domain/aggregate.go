package domain

import "regportal/internal/domain/entities"

// Aggregate is the derived count snapshot the Ledger keeps over the loaded
// registrations. It is a cache, never a source of truth: rebuilt from the
// store on load and after every successful insert.
type Aggregate struct {
	Total       int
	PerCategory map[entities.Category]int
	PerEvent    map[string]int
}

// CountRegistrations computes the aggregate for regs against catalog.
// Registrations for events missing from the catalog still count toward
// Total and PerEvent but belong to no category.
func CountRegistrations(catalog entities.Catalog, regs []entities.Registration) Aggregate {
	agg := Aggregate{
		PerCategory: make(map[entities.Category]int),
		PerEvent:    make(map[string]int),
	}
	for _, c := range catalog.Categories() {
		agg.PerCategory[c] = 0
	}
	for _, e := range catalog {
		agg.PerEvent[e.Name] = 0
	}
	for i := range regs {
		agg.Total++
		agg.PerEvent[regs[i].EventName]++
		if cfg := catalog.Get(regs[i].EventName); cfg != nil {
			agg.PerCategory[cfg.Category]++
		}
	}
	return agg
}
