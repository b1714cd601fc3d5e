package quotient

// AssemblyNode is one visit in a depth-first walk of an assembly tree. It
// carries the position of the component among its tree level: LevelIndex is
// the visit order within the level and LevelCount the total number of visits
// at that level.
type AssemblyNode[C any] struct {
	Component  *C
	Parent     *C
	Level      int
	LevelIndex int
	LevelCount int
}

// traverseAssembly walks the components depth-first from the root. Children
// are visited in the order the parent lists them. When excludeDuplicates is
// true a component reached through several parents is visited only on the
// first encounter, which collapses repeated hardware nodes.
//
// base projects the shared Component out of the concrete node type so the
// same walk serves quote and order trees.
func traverseAssembly[C any](components []C, base func(*C) *Component, excludeDuplicates bool) ([]AssemblyNode[C], error) {
	byID := make(map[int]*C, len(components))
	var root *C
	for i := range components {
		c := &components[i]
		byID[base(c).ID] = c
		if base(c).IsRootComponent {
			root = c
		}
	}
	if root == nil {
		return nil, ErrNoRootComponent
	}

	var nodes []AssemblyNode[C]
	visited := make(map[int]bool, len(components))
	onPath := make(map[int]bool, len(components))

	var walk func(c, parent *C, level int) error
	walk = func(c, parent *C, level int) error {
		id := base(c).ID
		if onPath[id] {
			return ErrAssemblyCycle
		}
		if excludeDuplicates && visited[id] {
			return nil
		}
		visited[id] = true
		onPath[id] = true
		nodes = append(nodes, AssemblyNode[C]{Component: c, Parent: parent, Level: level})
		for _, childID := range base(c).ChildIDs {
			child, ok := byID[childID]
			if !ok {
				return ErrUnknownComponent
			}
			if err := walk(child, c, level+1); err != nil {
				return err
			}
		}
		onPath[id] = false
		return nil
	}
	if err := walk(root, nil, 0); err != nil {
		return nil, err
	}

	// Level positions are only known once the walk is complete.
	levelTotals := make(map[int]int)
	for i := range nodes {
		nodes[i].LevelIndex = levelTotals[nodes[i].Level]
		levelTotals[nodes[i].Level]++
	}
	for i := range nodes {
		nodes[i].LevelCount = levelTotals[nodes[i].Level]
	}
	return nodes, nil
}

// rootComponent returns the component flagged as the assembly root.
func rootComponent[C any](components []C, base func(*C) *Component) (*C, error) {
	for i := range components {
		if base(&components[i]).IsRootComponent {
			return &components[i], nil
		}
	}
	return nil, ErrNoRootComponent
}

// componentByID returns the component with the given ID.
func componentByID[C any](components []C, base func(*C) *Component, id int) (*C, error) {
	for i := range components {
		if base(&components[i]).ID == id {
			return &components[i], nil
		}
	}
	return nil, ErrUnknownComponent
}

// totalChildQuantity returns how many units of the given component go into
// one unit of the assembly root, summed across every path from the root.
// The root itself counts as one.
func totalChildQuantity[C any](components []C, base func(*C) *Component, id int) (int, error) {
	byID := make(map[int]*C, len(components))
	for i := range components {
		c := &components[i]
		byID[base(c).ID] = c
	}
	target, ok := byID[id]
	if !ok {
		return 0, ErrUnknownComponent
	}

	memo := make(map[int]int, len(components))
	onPath := make(map[int]bool, len(components))

	var quantity func(c *C) (int, error)
	quantity = func(c *C) (int, error) {
		bc := base(c)
		if bc.IsRootComponent {
			return 1, nil
		}
		if got, ok := memo[bc.ID]; ok {
			return got, nil
		}
		if onPath[bc.ID] {
			return 0, ErrAssemblyCycle
		}
		onPath[bc.ID] = true
		defer delete(onPath, bc.ID)

		total := 0
		for _, parentID := range bc.ParentIDs {
			parent, ok := byID[parentID]
			if !ok {
				return 0, ErrUnknownComponent
			}
			parentQty, err := quantity(parent)
			if err != nil {
				return 0, err
			}
			total += parentQty * base(parent).ChildQuantity(bc.ID)
		}
		memo[bc.ID] = total
		return total, nil
	}
	return quantity(target)
}
