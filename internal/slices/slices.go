package slices

// Map applies f to every element of ee and collects the results.
func Map[K any, V any](ee []K, f func(e K) V) []V {
	res := make([]V, 0, len(ee))
	for _, e := range ee {
		res = append(res, f(e))
	}
	return res
}
