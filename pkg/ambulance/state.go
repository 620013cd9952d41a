package ambulance

import (
	"sort"
	"strconv"
	"strings"
)

// siteSet is an immutable sorted set of site indexes. Keeping the elements
// sorted makes value equality and key derivation well-defined.
type siteSet []int

func newSiteSet(indexes ...int) siteSet {
	s := append(siteSet{}, indexes...)
	sort.Ints(s)
	return s
}

func (s siteSet) Contains(i int) bool {
	pos := sort.SearchInts(s, i)
	return pos < len(s) && s[pos] == i
}

// With returns a new set with i added. The receiver is not modified.
func (s siteSet) With(i int) siteSet {
	if s.Contains(i) {
		return s
	}
	out := make(siteSet, 0, len(s)+1)
	out = append(out, s...)
	out = append(out, i)
	sort.Ints(out)
	return out
}

// Union returns a new set with every element of both sets.
func (s siteSet) Union(o siteSet) siteSet {
	out := s
	for _, i := range o {
		out = out.With(i)
	}
	return out
}

func (s siteSet) Len() int {
	return len(s)
}

func (s siteSet) IsEmpty() bool {
	return len(s) == 0
}

func (s siteSet) appendKey(b *strings.Builder) {
	for idx, i := range s {
		if idx > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i))
	}
}

type siteKind uint8

const (
	siteInitial siteKind = iota
	sitePickup
	siteDropoff
)

// State is one search state of the ambulance routing problem. Equality is
// structural over all five fields, realized through Key.
type State struct {
	kind siteKind
	// index into the input's pickup or dropoff list; unused for siteInitial
	siteIndex int

	// pickup sites whose tests are aboard, not yet transferred
	pendingOnboard siteSet
	// pickup sites whose tests were transferred to a lab; disjoint from
	// pendingOnboard
	delivered siteSet

	resourceUnits int

	visitedDropoffs siteSet
}

func newInitialState(resourceUnits int) State {
	return State{
		kind:            siteInitial,
		pendingOnboard:  newSiteSet(),
		delivered:       newSiteSet(),
		resourceUnits:   resourceUnits,
		visitedDropoffs: newSiteSet(),
	}
}

func (s State) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(s.kind)))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(s.siteIndex))
	b.WriteString(";p:")
	s.pendingOnboard.appendKey(&b)
	b.WriteString(";d:")
	s.delivered.appendKey(&b)
	b.WriteString(";r:")
	b.WriteString(strconv.Itoa(s.resourceUnits))
	b.WriteString(";v:")
	s.visitedDropoffs.appendKey(&b)
	return b.String()
}

func (s State) AtDropoff() bool {
	return s.kind == siteDropoff
}

func (s State) ResourceUnits() int {
	return s.resourceUnits
}

func (s State) NrPendingOnboard() int {
	return s.pendingOnboard.Len()
}

func (s State) NrDelivered() int {
	return s.delivered.Len()
}
