package decomp

import "github.com/spakin/disjoint"

// RootAt makes the decomposition a rooted tree: rootID becomes the root,
// and every other bag gets a Parent pointer and a Children set (Neighbours
// minus Parent). If rootID < 0, bag 0 is used as the root.
//
// Before rooting, the bag graph is validated to be connected and acyclic —
// a genuine tree — using union-find over the bag-tree edges, rejecting a
// disconnected or cyclic bag graph before any Parent/Children pointer is
// assigned.
//
// Errors: ErrEmptyDecomposition, ErrRootOutOfRange, ErrDecompositionNotATree.
func (d *Decomposition) RootAt(rootID int) error {
	if len(d.Bags) == 0 {
		return ErrEmptyDecomposition
	}
	if rootID < 0 {
		rootID = 0
	} else if rootID >= len(d.Bags) {
		return ErrRootOutOfRange
	}

	if err := d.validateIsTree(); err != nil {
		return err
	}

	for i := range d.Bags {
		d.Bags[i].Parent = noParent
		d.Bags[i].Children = nil
	}

	visited := make([]bool, len(d.Bags))
	d.setParentRecursive(rootID, noParent, visited)

	d.root = rootID
	d.rooted = true

	return nil
}

// validateIsTree confirms the bag graph is connected and acyclic: a forest
// with n bags has n-1 edges iff it has no cycle and is connected, so a
// union-find pass that never joins two already-joined elements, followed by
// an edge-count check, is sufficient.
func (d *Decomposition) validateIsTree() error {
	elems := make([]*disjoint.Element, len(d.Bags))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	edgeCount := 0
	for pair := range d.edgeSeen {
		a, b := pair[0], pair[1]
		if elems[a].Find() == elems[b].Find() {
			return ErrDecompositionNotATree
		}
		disjoint.Union(elems[a], elems[b])
		edgeCount++
	}

	if edgeCount != len(d.Bags)-1 {
		return ErrDecompositionNotATree
	}

	return nil
}

// setParentRecursive assigns parent to bagID and recurses into every
// neighbour except the one we arrived from, mirroring the reference
// implementation's recursive rooting pass one-for-one.
func (d *Decomposition) setParentRecursive(bagID, parent int, visited []bool) {
	visited[bagID] = true
	d.Bags[bagID].Parent = parent

	for _, nb := range d.Bags[bagID].Neighbours {
		if nb == parent || visited[nb] {
			continue
		}
		d.Bags[bagID].Children = append(d.Bags[bagID].Children, nb)
		d.setParentRecursive(nb, bagID, visited)
	}
}
