package distribution

import "math"

func abs(x float64) float64 { return math.Abs(x) }

func logFloat(x float64) float64 { return math.Log(x) }
