package kolam

// growTo returns s resized to exactly n elements, reallocating only when n
// exceeds the current capacity. Existing elements are preserved; new ones
// are the zero value. Callers pass at least 2*len(s) to get doubling.
func growTo[T any](s []T, n int) []T {
	if n <= len(s) {
		return s
	}
	if n <= cap(s) {
		return s[:n]
	}
	ns := make([]T, n)
	copy(ns, s)
	return ns
}

// doubled returns the next backing size after n.
func doubled(n int) int {
	if n == 0 {
		return 1
	}
	return n << 1
}
