package attraction

// defaultValues is the matrix the simulation ships with.
var defaultValues = [Size]float64{
	3.0, -1.5, 4.5, 3.0, -2.5, -4.5, 4.5, 4.0,
	3.5, 3.0, 4.0, -2.5, -1.5, 1.5, 3.5, 3.0,
	-2.0, 1.5, 4.0, -2.0, -3.5, 2.5, -4.0, -4.5,
	-3.5, 3.5, 5.0, 3.0, 4.0, -2.5, 4.0, 4.0,
	4.5, -3.5, -3.0, -2.0, -1.5, -2.5, 4.5, -4.0,
	1.5, 1.0, 3.5, -4.5, 4.5, -4.0, -1.5, -4.5,
	-2.0, 4.0, -5.0, -2.5, 5.0, 3.0, -2.0, -1.0,
	3.5, -3.0, 4.0, 3.0, -3.0, 4.0, 3.0, 3.0,
}

// Default returns the built-in fallback matrix.
func Default() Matrix {
	m := Matrix{values: make([]float64, Size)}
	copy(m.values, defaultValues[:])
	return m
}
