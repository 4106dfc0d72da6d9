package pawlist

import (
	"cmp"
	"strings"
)

// Default ordering ranks, lowest first:
// nil < false < true < numbers < strings < lists < instances < foreign < missing
const (
	rankNil = iota
	rankFalse
	rankTrue
	rankNumber
	rankString
	rankList
	rankInstance
	rankForeign
	rankMissing
)

func rankOf(v Value) int {
	if v == nil {
		return rankNil
	}
	if v.IsMissing() {
		return rankMissing
	}
	obj, ok := v.(*Object)
	if !ok {
		return rankForeign
	}
	switch obj.typ {
	case ObjNil:
		return rankNil
	case ObjBool:
		if b, _ := obj.data.(bool); b {
			return rankTrue
		}
		return rankFalse
	case ObjInt, ObjFloat:
		return rankNumber
	case ObjString:
		return rankString
	case ObjList:
		return rankList
	case ObjInstance:
		return rankInstance
	}
	return rankForeign
}

// compareValues returns <0 if a<b, 0 if a==b, >0 if a>b
func compareValues(a, b Value) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb {
		return ra - rb
	}

	// Within same rank
	switch ra {
	case rankNumber:
		oa, ob := a.(*Object), b.(*Object)
		ia, aInt := oa.AsInt()
		ib, bInt := ob.AsInt()
		if aInt && bInt {
			return cmp.Compare(ia, ib)
		}
		fa, _ := oa.AsFloat()
		fb, _ := ob.AsFloat()
		return cmp.Compare(fa, fb)
	case rankString:
		sa, _ := a.(*Object).AsString()
		sb, _ := b.(*Object).AsString()
		return strings.Compare(sa, sb)
	case rankList, rankInstance:
		// identity order
		return cmp.Compare(a.(*Object).id, b.(*Object).id)
	}
	return 0
}
