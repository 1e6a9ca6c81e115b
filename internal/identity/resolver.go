package identity

// Resolver maps raw author names to canonical developer identities
// using an alias table supplied at construction. Resolution is total:
// names absent from the table resolve to themselves.
type Resolver struct {
	aliases map[string]string
}

// NewResolver builds a resolver from an alias → canonical mapping. The
// table is copied, so later changes to the input map have no effect.
// Many aliases may share one canonical name; if the same alias is set
// twice while building the input map, the last write wins.
func NewResolver(aliases map[string]string) *Resolver {
	table := make(map[string]string, len(aliases))
	for alias, canonical := range aliases {
		table[alias] = canonical
	}
	return &Resolver{aliases: table}
}

// Resolve returns the canonical identity for a raw author name.
func (r *Resolver) Resolve(name string) string {
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}
	return name
}
