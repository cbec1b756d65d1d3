package seeder

// Reconcile returns the desired items whose key is missing from existing.
// Desired order is kept and repeated keys inside desired are dropped, so
// the result can be inserted as is.
func Reconcile[T any, K comparable](existing, desired []T, keyOf func(T) K) []T {
	seen := make(map[K]struct{}, len(existing)+len(desired))
	for _, e := range existing {
		seen[keyOf(e)] = struct{}{}
	}

	var missing []T

	for _, d := range desired {
		k := keyOf(d)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		missing = append(missing, d)
	}

	return missing
}
