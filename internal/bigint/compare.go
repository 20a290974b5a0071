package bigint

// Cmp compares x and y and returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}
		return 1
	}
	switch x.sign {
	case 0:
		return 0
	case 1:
		return cmpMag(x.mag, y.mag)
	default:
		// a larger magnitude is a smaller negative value
		return cmpMag(y.mag, x.mag)
	}
}

// CmpInt64 compares x with v.
func (x *Int) CmpInt64(v int64) int { return x.Cmp(FromInt64(v)) }

// CmpUint64 compares x with v.
func (x *Int) CmpUint64(v uint64) int { return x.Cmp(FromUint64(v)) }

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// cmpMag compares two canonical magnitudes.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
