package stats

// LinearFit holds the coefficients of a degree-1 least-squares fit y = a*x + b.
type LinearFit struct {
	Slope     float64
	Intercept float64
}

// LinearRegression fits an ordinary least-squares line through the points.
// Returns false when fewer than 2 points are given, or when all x values are
// identical (vertical line, no defined slope).
func LinearRegression(x, y []float64) (LinearFit, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return LinearFit{}, false
	}

	meanX := Mean(x)
	meanY := Mean(y)

	var sumXY, sumX2 float64
	for i := 0; i < len(x); i++ {
		dx := x[i] - meanX
		sumXY += dx * (y[i] - meanY)
		sumX2 += dx * dx
	}

	if sumX2 == 0 {
		return LinearFit{}, false
	}

	slope := sumXY / sumX2
	return LinearFit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, true
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}
