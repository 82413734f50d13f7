package tsptree

// distribute enumerates every way to split each bag vertex's remaining
// target degree between local edges (resolved later by edgeSelect) and
// delegation to one of the bag's children, and folds the results of
// baseFn over all complete splits with mergeFn.
//
// This mirrors the recursive "(i, j)" enumeration used for both passes of
// the DP: the value pass instantiates T = int64 with mergeFn = min, and
// the reconstruction pass instantiates T = [][2]int with mergeFn =
// preferFirstNonEmpty (the first non-nil edge list wins). i walks the bag's vertex positions, j walks its
// non-parent neighbours (its children).
type distributeCtx[T any] struct {
	childCount int
	children   []int // bag ids of the children, same order as child-degree rows
	canTakeVID func(childIdx, vid int) bool

	baseFn  func(targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) T
	mergeFn func(a, b T) T
	zero    T
}

func distribute[T any](
	contents []int,
	targetDegrees []int,
	endpoints [][2]int,
	children []int,
	canTakeVID func(childIdx, vid int) bool,
	baseFn func(targetDegrees []int, childDegrees [][]int, endpoints [][2]int, childEndpoints [][][2]int) T,
	mergeFn func(a, b T) T,
	zero T,
) T {
	ctx := &distributeCtx[T]{
		childCount: len(children),
		children:   children,
		canTakeVID: canTakeVID,
		baseFn:     baseFn,
		mergeFn:    mergeFn,
		zero:       zero,
	}

	childDegrees := make([][]int, len(children))
	for c := range childDegrees {
		childDegrees[c] = make([]int, len(contents))
	}
	childEndpoints := make([][][2]int, len(children))

	return ctx.recurse(contents, 0, 0, append([]int(nil), targetDegrees...), childDegrees, endpoints, childEndpoints)
}

func (ctx *distributeCtx[T]) recurse(
	contents []int,
	i, j int,
	targetDegrees []int,
	childDegrees [][]int,
	endpoints [][2]int,
	childEndpoints [][][2]int,
) T {
	if i >= len(contents) {
		return ctx.baseFn(targetDegrees, childDegrees, endpoints, childEndpoints)
	}

	if targetDegrees[i] == 0 || j >= ctx.childCount {
		return ctx.recurse(contents, i+1, 0, targetDegrees, childDegrees, endpoints, childEndpoints)
	}

	if !ctx.canTakeVID(j, contents[i]) {
		return ctx.recurse(contents, i, j+1, targetDegrees, childDegrees, endpoints, childEndpoints)
	}

	result := ctx.zero

	// Option A: delegate both units of a degree-2 vertex to this child as a
	// pure pass-through (no endpoint pair is created).
	if targetDegrees[i] == 2 && childDegrees[j][i] == 0 {
		td := append([]int(nil), targetDegrees...)
		cds := copyRows(childDegrees)
		td[i] = 0
		cds[j][i] = 2
		optA := ctx.recurse(contents, i+1, 0, td, cds, endpoints, childEndpoints)
		result = ctx.mergeFn(result, optA)
	}

	// Option B: delegate one unit at i, paired with a later vertex k that
	// also owes a unit, as an endpoint pair through this child.
	for k := i + 1; k < len(contents); k++ {
		if targetDegrees[k] < 1 || childDegrees[j][k] > 1 || !ctx.canTakeVID(j, contents[k]) {
			continue
		}
		if pairPresent(childEndpoints[j], contents[i], contents[k]) {
			continue
		}

		td := append([]int(nil), targetDegrees...)
		cds := copyRows(childDegrees)
		ceps := copyPairs(childEndpoints)
		td[i]--
		cds[j][i]++
		td[k]--
		cds[j][k]++
		ceps[j] = append(ceps[j], [2]int{contents[i], contents[k]})

		optB := ctx.recurse(contents, i, j, td, cds, endpoints, ceps)
		result = ctx.mergeFn(result, optB)
	}

	// Option C: defer this vertex's remaining unit(s) to local edges or the
	// next child.
	optC := ctx.recurse(contents, i, j+1, targetDegrees, childDegrees, endpoints, childEndpoints)
	result = ctx.mergeFn(result, optC)

	return result
}

func copyRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i, r := range rows {
		out[i] = append([]int(nil), r...)
	}

	return out
}

func copyPairs(rows [][][2]int) [][][2]int {
	out := make([][][2]int, len(rows))
	for i, r := range rows {
		out[i] = append([][2]int(nil), r...)
	}

	return out
}

func pairPresent(pairs [][2]int, a, b int) bool {
	want := canonPair(a, b)
	for _, p := range pairs {
		if canonPair(p[0], p[1]) == want {
			return true
		}
	}

	return false
}

func flattenPairs(rows [][][2]int) [][2]int {
	var out [][2]int
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
