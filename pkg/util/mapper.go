package util

// MapSlice applies converter to each element. Nil results are skipped.
func MapSlice[T any, R any](items []T, converter func(T) *R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		if converted := converter(item); converted != nil {
			result = append(result, *converted)
		}
	}
	return result
}

// Unique returns items without duplicates, keeping first occurrences in order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
