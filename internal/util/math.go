package util

// UniquePositive drops non-positive values and duplicates, keeping order.
func UniquePositive(nums []int) []int {
	seen := make(map[int]struct{})
	result := make([]int, 0, len(nums))

	for _, n := range nums {
		if n <= 0 {
			continue
		}
		if _, exists := seen[n]; !exists {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	return result
}
