package stats

import (
	"math"
	"strconv"
	"strings"
)

const (
	maxIndices = 10
	moreMarker = "..."
	// tolérance pour comparer durées (ms) et CPS
	floatTolerance = 0.01
)

// Indices : numéros (base 1) des répliques qui atteignent un extremum.
// More indique qu'il en existe au-delà des maxIndices listées.
type Indices struct {
	List []int
	More bool
}

// String rend "#1, #5, ..." (sans parenthèses).
func (ix Indices) String() string {
	parts := make([]string, 0, len(ix.List)+1)
	for _, n := range ix.List {
		parts = append(parts, "#"+strconv.Itoa(n))
	}
	if ix.More {
		parts = append(parts, moreMarker)
	}
	return strings.Join(parts, ", ")
}

// collectIndices parcourt n répliques dans l'ordre et garde celles pour
// lesquelles match est vrai, au plus maxIndices.
func collectIndices(n int, match func(i int) bool) Indices {
	var ix Indices
	for i := 0; i < n; i++ {
		if !match(i) {
			continue
		}
		if len(ix.List) >= maxIndices {
			ix.More = true
			break
		}
		ix.List = append(ix.List, i+1)
	}
	return ix
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

// anyEqual : au moins une ligne de la réplique a exactement la valeur v.
func anyEqual(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
