package tstate

import "sort"

// Encode packs a degree vector and an endpoint list into a canonical
// StateKey. endpoints must have even length; it is interpreted as
// consecutive (u,v) pairs referring to original-graph vertex ids.
//
// Canonicalization: within each pair, the smaller id is stored first; the
// list of pairs is then sorted lexicographically. This guarantees
// decode(encode(d,e)) == (d, canonical(e)) and that equal keys correspond
// exactly to semantically equal states.
//
// Complexity: O(k + p*log(p)) where k=len(degrees), p=len(endpoints)/2.
func Encode(degrees []int, endpoints []int) (StateKey, error) {
	var key StateKey

	if len(degrees) > maxDegreeSlots {
		return StateKey{}, ErrTooManyDegreeSlots
	}
	if len(endpoints)%2 != 0 {
		return StateKey{}, ErrOddEndpointList
	}
	numPairs := len(endpoints) / 2
	if numPairs > maxPairs {
		return StateKey{}, ErrTooManyPairs
	}

	var packedDegrees uint64
	for i, d := range degrees {
		if d < 0 || d > 2 {
			return StateKey{}, ErrInvalidDegree
		}
		packedDegrees |= uint64(d) << uint(2*i)
	}
	key.degrees = packedDegrees
	key.k = uint8(len(degrees))

	pairs := make([]uint64, 0, numPairs)
	for i := 0; i < numPairs; i++ {
		u, v := endpoints[2*i], endpoints[2*i+1]
		if u < 0 || u > maxVertID || v < 0 || v > maxVertID {
			return StateKey{}, ErrVertexIDTooLarge
		}
		lo, hi := u, v
		if lo > hi {
			lo, hi = hi, lo
		}
		pairs = append(pairs, (uint64(lo)<<idBits)|uint64(hi))
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] < pairs[j] })

	key.numPairs = uint8(numPairs)
	copy(key.pairs[:], pairs)

	return key, nil
}

// DecodeDegrees returns the degree vector encoded in key.
func DecodeDegrees(key StateKey) []int {
	degrees := make([]int, key.k)
	for i := range degrees {
		degrees[i] = int((key.degrees >> uint(2*i)) & 0x3)
	}

	return degrees
}

// DecodeEndpoints returns the flattened, canonicalized endpoint pair list
// encoded in key (length 2*numPairs, pairs in ascending order, each pair's
// two ids ascending).
func DecodeEndpoints(key StateKey) []int {
	out := make([]int, 0, 2*int(key.numPairs))
	for i := 0; i < int(key.numPairs); i++ {
		p := key.pairs[i]
		lo := int(p >> idBits)
		hi := int(p & idMask)
		out = append(out, lo, hi)
	}

	return out
}

// NumPairs returns the number of endpoint pairs encoded in key.
func NumPairs(key StateKey) int {
	return int(key.numPairs)
}

// Degree returns the i'th slot's degree encoded in key.
func Degree(key StateKey, i int) int {
	return int((key.degrees >> uint(2*i)) & 0x3)
}
