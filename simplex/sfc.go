package simplex

import "github.com/notargets/spacetree/utils"

// LinearID returns the SFC position of t in the uniform refinement of the
// given level. Levels deeper than t's pad with the all-zero first
// descendant digits.
func (k *Kernel) LinearID(t *Elem, level int) uint64 {
	utils.Assertf(0 <= level && level <= MaxLevel, "simplex: level %d", level)
	var id uint64
	exponent := 0
	if level > int(t.Level) {
		exponent = (level - int(t.Level)) * k.Dim
	}
	typ := t.Type
	for i := t.Level; i > 0; i-- {
		cid := k.cubeID(t, i)
		id |= uint64(k.typeCidToIloc[typ][cid]) << exponent
		exponent += k.Dim
		typ = k.cidTypeToParentType[cid][typ]
	}
	return id
}

// InitLinearID initializes t as the element with the given SFC position at
// the given level, consuming Dim bits per level from root downward.
func (k *Kernel) InitLinearID(t *Elem, id uint64, level int) {
	utils.Assertf(0 <= level && level <= MaxLevel, "simplex: level %d", level)
	utils.Assertf(id < uint64(1)<<(k.Dim*level), "simplex: id %d out of range at level %d", id, level)
	t.X, t.Y, t.Z = 0, 0, 0
	t.Level = int8(level)
	var typ int8
	for i := 1; i <= level; i++ {
		offsetCoords := MaxLevel - i
		offsetIndex := level - i
		local := (id >> (k.Dim * offsetIndex)) & uint64(k.Children()-1)
		cid := k.parentTypeIlocToCid[typ][local]
		typ = k.parentTypeIlocToType[typ][local]
		if cid&1 != 0 {
			t.X |= 1 << offsetCoords
		}
		if cid&2 != 0 {
			t.Y |= 1 << offsetCoords
		}
		if cid&4 != 0 {
			t.Z |= 1 << offsetCoords
		}
	}
	t.Type = typ
}

// succPred steps s by increment positions along the SFC of the uniform
// refinement at the given level. s must hold a copy of t on entry. The
// wrap test is two-sided: an increment wrapping to 0 and a decrement
// wrapping to Children-1 both carry into the coarser level.
func (k *Kernel) succPred(t *Elem, s *Elem, level int8, increment int) {
	if increment == 0 {
		return
	}
	utils.Assertf(1 <= level && level <= t.Level, "simplex: succ/pred level %d", level)

	cid := k.cubeID(t, level)
	typ := k.typeAt(t, level)
	local := (int(k.typeCidToIloc[typ][cid]) + k.Children() + increment) % k.Children()
	var parentType int8
	if (increment > 0 && local == 0) || (increment < 0 && local == k.Children()-1) {
		sign := 1
		if increment < 0 {
			sign = -1
		}
		k.succPred(t, s, level-1, sign)
		// s now carries the stepped ancestor; its type is the parent type
		// at this level.
		parentType = s.Type
	} else {
		parentType = k.cidTypeToParentType[cid][typ]
	}
	newType := k.parentTypeIlocToType[parentType][local]
	newCid := k.parentTypeIlocToCid[parentType][local]
	s.Type = newType
	s.Level = level
	bit := Coord(1) << (MaxLevel - level)
	s.X = setBit(s.X, bit, newCid&1 != 0)
	s.Y = setBit(s.Y, bit, newCid&2 != 0)
	if k.Dim == 3 {
		s.Z = setBit(s.Z, bit, newCid&4 != 0)
	}
}

func setBit(c, bit Coord, on bool) Coord {
	if on {
		return c | bit
	}
	return c & ^bit
}

// Successor stores in s the next element after t in the uniform refinement
// of the given level. t must not be the last element; callers check via
// LinearID first. t and s may alias.
func (k *Kernel) Successor(t *Elem, s *Elem, level int) {
	cp := *t
	*s = cp
	k.succPred(&cp, s, int8(level), 1)
}

// Predecessor stores in s the element before t in the uniform refinement
// of the given level. t must not be the first element. t and s may alias.
func (k *Kernel) Predecessor(t *Elem, s *Elem, level int) {
	cp := *t
	*s = cp
	k.succPred(&cp, s, int8(level), -1)
}

// FirstDescendant stores in s the first MaxLevel descendant of t: the
// element with t's id in a uniform MaxLevel refinement.
func (k *Kernel) FirstDescendant(t *Elem, s *Elem) {
	k.InitLinearID(s, k.LinearID(t, MaxLevel), MaxLevel)
}

// LastDescendant stores in s the last MaxLevel descendant of t: t's id
// followed by all-ones child digits.
func (k *Kernel) LastDescendant(t *Elem, s *Elem) {
	exponent := k.Dim * (MaxLevel - int(t.Level))
	id := k.LinearID(t, int(t.Level))<<exponent | (uint64(1)<<exponent - 1)
	k.InitLinearID(s, id, MaxLevel)
}
