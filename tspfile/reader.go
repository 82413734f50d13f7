package tspfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Mattias1/graph-tools/core"
	"github.com/Mattias1/graph-tools/decomp"
)

type section int

const (
	sectionNone section = iota
	sectionNodeCoord
	sectionEdge
	sectionBagCoord
	sectionBagEdge
)

// Read parses the sectioned text format from r. Malformed payload lines
// are skipped and recorded in the result's Warnings; a structural problem
// (non-dense vertex or bag ids) is returned as an error.
func Read(r io.Reader, opts Options) (*ParsedFile, error) {
	g := core.NewGraph()
	var d *decomp.Decomposition

	pf := &ParsedFile{Graph: g}
	sec := sectionNone

	scanner := bufio.NewScanner(r)
	lineNo := 0
	warn := func(reason string) {
		pf.Warnings = append(pf.Warnings, Warning{Line: lineNo, Reason: reason})
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if key, value, ok := splitHeader(line); ok {
			switch key {
			case "NAME":
				pf.Name = value
			case "DIMENSION":
				// advisory only; no allocation depends on it
			case "EDGE_WEIGHT_TYPE":
				if value == "EUC_2D" {
					pf.Euclidean = true
				}
			default:
				// unknown header lines are ignored
			}

			continue
		}

		if newSec, ok := sectionKeyword(line); ok {
			sec = newSec
			if sec == sectionBagCoord || sec == sectionBagEdge {
				if d == nil {
					d = decomp.NewDecomposition(g)
					pf.Decomp = d
					pf.HasDecomp = true
				}
			}

			continue
		}

		switch sec {
		case sectionNodeCoord:
			if err := readNodeCoordLine(g, line, opts.VIDStart, warn); err != nil {
				return nil, err
			}
		case sectionEdge:
			if err := readEdgeLine(g, pf, line, opts.VIDStart, warn); err != nil {
				return nil, err
			}
		case sectionBagCoord:
			if err := readBagCoordLine(d, line, opts.VIDStart, warn); err != nil {
				return nil, err
			}
		case sectionBagEdge:
			readBagEdgeLine(d, line, warn)
		default:
			// unknown lines outside any section are ignored
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pf, nil
}

func splitHeader(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	return key, value, true
}

func sectionKeyword(line string) (section, bool) {
	switch line {
	case "NODE_COORD_SECTION":
		return sectionNodeCoord, true
	case "EDGE_SECTION":
		return sectionEdge, true
	case "BAG_COORD_SECTION":
		return sectionBagCoord, true
	case "BAG_EDGE_SECTION":
		return sectionBagEdge, true
	default:
		return sectionNone, false
	}
}

func readNodeCoordLine(g *core.Graph, line string, vidStart int, warn func(string)) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		warn("expected '<vid> <x> <y>'")

		return nil
	}

	nums, ok := parseInts(fields)
	if !ok {
		warn("non-numeric field in NODE_COORD_SECTION")

		return nil
	}

	localID := nums[0] - vidStart
	if localID != g.NumVertices() {
		return ErrVertexIDNotDense
	}

	g.AddVertex(&core.Point{X: nums[1], Y: nums[2]}, "")

	return nil
}

func readEdgeLine(g *core.Graph, pf *ParsedFile, line string, vidStart int, warn func(string)) error {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		warn("expected '<vid_a> <vid_b> [<cost>]'")

		return nil
	}

	nums, ok := parseInts(fields)
	if !ok {
		warn("non-numeric field in EDGE_SECTION")

		return nil
	}

	a, b := nums[0]-vidStart, nums[1]-vidStart

	var cost int64
	if len(nums) == 3 {
		cost = int64(nums[2])
	} else if pf.Euclidean {
		va, errA := g.Vertex(a)
		vb, errB := g.Vertex(b)
		if errA != nil || errB != nil || va.Pos == nil || vb.Pos == nil {
			warn("EUC_2D cost requested but vertex coordinates are missing")

			return nil
		}
		cost = EuclideanCost(va.Pos.X, va.Pos.Y, vb.Pos.X, vb.Pos.Y)
	} else {
		warn("missing cost and no EDGE_WEIGHT_TYPE to derive one")

		return nil
	}

	if err := g.AddEdge(a, b, cost); err != nil {
		if err != core.ErrMultiEdgeNotAllowed {
			warn(err.Error())
		}
	}

	return nil
}

func readBagCoordLine(d *decomp.Decomposition, line string, vidStart int, warn func(string)) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		warn("expected '<bid> <x> <y> <vid>*'")

		return nil
	}

	nums, ok := parseInts(fields)
	if !ok {
		warn("non-numeric field in BAG_COORD_SECTION")

		return nil
	}

	bid := nums[0]
	if bid != d.NumBags() {
		return ErrBagIDNotDense
	}

	contents := make([]int, 0, len(nums)-3)
	for _, vid := range nums[3:] {
		contents = append(contents, vid-vidStart)
	}

	_, err := d.AddBag(contents)
	if err != nil {
		warn(err.Error())
	}

	return nil
}

func readBagEdgeLine(d *decomp.Decomposition, line string, warn func(string)) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		warn("expected '<bid_a> <bid_b>'")

		return
	}

	nums, ok := parseInts(fields)
	if !ok {
		warn("non-numeric field in BAG_EDGE_SECTION")

		return
	}

	if err := d.AddBagEdge(nums[0], nums[1]); err != nil {
		warn(err.Error())
	}
}

func parseInts(fields []string) ([]int, bool) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}

	return out, true
}
