// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
