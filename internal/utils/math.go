// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение отрезком [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// AngleTo возвращает угол (в радианах) от точки (x1, y1) к точке (x2, y2).
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Dist возвращает расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
