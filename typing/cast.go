package typing

// CastLegal reports whether a value of type src may be cast to type dest,
// independent of whether the source value is addressable. Addressability
// requirements (Array->Pointer decay, Tuple->Array) are checked separately
// by the caller against the value being cast, not the type alone, since
// typing carries no notion of value.
//
// The matrix mirrors original_source's cast dispatch: Number<->Number,
// Number->Pointer, Pointer->Pointer, Pointer->Number, Array->Pointer
// (decay), Tuple->Array, Null->Pointer, Null->Number, and T->T.
func CastLegal(src, dest Type) bool {
	if Equals(src, dest) {
		return true
	}

	switch s := src.(type) {
	case Number:
		switch dest.(type) {
		case Number, Pointer:
			return true
		}
		return false

	case Pointer:
		switch dest.(type) {
		case Pointer, Number:
			return true
		}
		return false

	case Array:
		if p, ok := dest.(Pointer); ok {
			return Equals(s.Elem, p.Elem)
		}
		return false

	case Tuple:
		if a, ok := dest.(Array); ok {
			if len(s.Elems) != a.Count {
				return false
			}
			for _, e := range s.Elems {
				if !Equals(e, a.Elem) {
					return false
				}
			}
			return true
		}
		return false

	case Null:
		switch dest.(type) {
		case Pointer, Number:
			return true
		}
		return false

	default:
		return false
	}
}
