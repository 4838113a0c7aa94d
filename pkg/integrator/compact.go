package integrator

// Compact removes terminated paths from the working set, packing the
// survivors contiguously while preserving their relative order (stable
// partition, in place). Surviving segments are untouched beyond their
// position; the returned slice shares the input's backing array.
func Compact(segments []PathSegment) []PathSegment {
	n := 0
	for i := range segments {
		if segments[i].Alive {
			if n != i {
				segments[n] = segments[i]
			}
			n++
		}
	}
	return segments[:n]
}
