package locate

// NodeSet answers node membership. *core.Graph implements it.
type NodeSet interface {
	HasNode(id string) bool
}

// Resolver maps endpoint identifiers to navigation node IDs.
type Resolver struct {
	nodes NodeSet
	reg   *Registry
}

// NewResolver binds a node set and a registry. A nil registry resolves node
// IDs only.
func NewResolver(nodes NodeSet, reg *Registry) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}

	return &Resolver{nodes: nodes, reg: reg}
}

// Resolve returns the navigation node for id.
// Complexity: O(log P + log R).
func (r *Resolver) Resolve(id string) (string, bool) {
	if r.nodes != nil && r.nodes.HasNode(id) {
		return id, true
	}
	if loc, ok := r.reg.POI(id); ok {
		return loc.Entrance()
	}
	if loc, ok := r.reg.Room(id); ok {
		return loc.Entrance()
	}

	return "", false
}

// Registry returns the bound registry.
func (r *Resolver) Registry() *Registry { return r.reg }

// DanglingEntrance lists locations whose first access node is not a graph
// node, POIs first, each group in ascending ID order. Resolve still returns
// that access node; routing from it then fails.
func (r *Resolver) DanglingEntrance() []Location {
	var out []Location
	for _, group := range [][]Location{r.reg.POIs(), r.reg.Rooms()} {
		for _, loc := range group {
			n, ok := loc.Entrance()
			if ok && (r.nodes == nil || !r.nodes.HasNode(n)) {
				out = append(out, loc)
			}
		}
	}

	return out
}
