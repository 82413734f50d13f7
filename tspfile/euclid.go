package tspfile

import "math"

// EuclideanCost computes the EUC_2D edge weight TSPLIB-style files use
// when a NODE_COORD_SECTION supplies coordinates and an EDGE_SECTION
// payload line omits an explicit cost: floor(euclidean distance / 10).
func EuclideanCost(x1, y1, x2, y2 int) int64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	dist := math.Sqrt(dx*dx + dy*dy)

	return int64(math.Floor(dist / 10))
}
