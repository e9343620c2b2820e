package engine

// RowPoints is awarded for the first row cleared by a sweep. Each further row
// in the same sweep is worth twice the one before.
const RowPoints = 100

// ScoreIncrement returns the points for clearing n rows in one sweep,
// 100 * (2^n - 1).
func ScoreIncrement(n int) int {
	points, mult := 0, 1
	for range max(n, 0) {
		points += mult * RowPoints
		mult *= 2
	}
	return points
}
