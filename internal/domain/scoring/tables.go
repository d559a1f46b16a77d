package scoring

import "fmt"

const (
	thresholdCount = 20
	ageBands       = MaxAge - MinAge + 1
)

// table holds one threshold row per age band, youngest first.
type table [ageBands][thresholdCount]float64

// direction tells the resolver how a row is ordered and scanned.
type direction int

const (
	// lowerIsBetter rows run from slowest to fastest time.
	lowerIsBetter direction = iota
	// higherIsBetter rows run from shortest to longest distance or count.
	higherIsBetter
	// reachRatio rows run from lowest to highest index and are scanned from the top.
	reachRatio
)

type tablePair struct {
	male   *table
	female *table
	dir    direction
}

var tables = map[TestType]tablePair{
	Ladder:     {male: &ladderMale, female: &ladderFemale, dir: lowerIsBetter},
	Brace:      {male: &braceMale, female: &braceFemale, dir: lowerIsBetter},
	Hexagon:    {male: &hexagonMale, female: &hexagonFemale, dir: lowerIsBetter},
	Medicimbal: {male: &medicimbalMale, female: &medicimbalFemale, dir: higherIsBetter},
	TripleJump: {male: &tripleJumpMale, female: &tripleJumpFemale, dir: higherIsBetter},
	Jet:        {male: &jetMale, female: &jetFemale, dir: higherIsBetter},
	BeepTest:   {male: &beepTestMale, female: &beepTestFemale, dir: higherIsBetter},
	YTest:      {male: &yTestMale, female: &yTestFemale, dir: reachRatio},
}

// Row returns a copy of the thresholds used for (tt, g) at the clamped age.
func Row(tt TestType, g Gender, age int) ([thresholdCount]float64, error) {
	row, _, err := lookup(tt, g, age)
	if err != nil {
		return [thresholdCount]float64{}, err
	}
	return *row, nil
}

func lookup(tt TestType, g Gender, age int) (*[thresholdCount]float64, direction, error) {
	pair, ok := tables[tt]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownTestType, int(tt))
	}
	if err := g.Validate(); err != nil {
		return nil, 0, err
	}
	t := pair.male
	if g == Female {
		t = pair.female
	}
	return &t[ClampAge(age)-MinAge], pair.dir, nil
}

// Normative thresholds per test and gender, ages 10 through 20.
var (
	ladderMale = table{
		{3.70, 3.65, 3.60, 3.55, 3.50, 3.45, 3.40, 3.35, 3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75}, // 10
		{3.62, 3.57, 3.52, 3.47, 3.42, 3.37, 3.32, 3.27, 3.22, 3.17, 3.12, 3.07, 3.02, 2.97, 2.92, 2.87, 2.82, 2.77, 2.72, 2.67}, // 11
		{3.54, 3.49, 3.44, 3.39, 3.34, 3.29, 3.24, 3.19, 3.14, 3.09, 3.04, 2.99, 2.94, 2.89, 2.84, 2.79, 2.74, 2.69, 2.64, 2.59}, // 12
		{3.46, 3.41, 3.36, 3.31, 3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66, 2.61, 2.56, 2.51}, // 13
		{3.40, 3.35, 3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75, 2.70, 2.65, 2.60, 2.55, 2.50, 2.45}, // 14
		{3.36, 3.31, 3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66, 2.61, 2.56, 2.51, 2.46, 2.41}, // 15
		{3.33, 3.28, 3.23, 3.18, 3.13, 3.08, 3.03, 2.98, 2.93, 2.88, 2.83, 2.78, 2.73, 2.68, 2.63, 2.58, 2.53, 2.48, 2.43, 2.38}, // 16
		{3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75, 2.70, 2.65, 2.60, 2.55, 2.50, 2.45, 2.40, 2.35}, // 17
		{3.28, 3.23, 3.18, 3.13, 3.08, 3.03, 2.98, 2.93, 2.88, 2.83, 2.78, 2.73, 2.68, 2.63, 2.58, 2.53, 2.48, 2.43, 2.38, 2.33}, // 18
		{3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66, 2.61, 2.56, 2.51, 2.46, 2.41, 2.36, 2.31}, // 19
		{3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75, 2.70, 2.65, 2.60, 2.55, 2.50, 2.45, 2.40, 2.35, 2.30}, // 20
	}

	ladderFemale = table{
		{3.70, 3.65, 3.60, 3.55, 3.50, 3.45, 3.40, 3.35, 3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75}, // 10
		{3.61, 3.56, 3.51, 3.46, 3.41, 3.36, 3.31, 3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66}, // 11
		{3.53, 3.48, 3.43, 3.38, 3.33, 3.28, 3.23, 3.18, 3.13, 3.08, 3.03, 2.98, 2.93, 2.88, 2.83, 2.78, 2.73, 2.68, 2.63, 2.58}, // 12
		{3.47, 3.42, 3.37, 3.32, 3.27, 3.22, 3.17, 3.12, 3.07, 3.02, 2.97, 2.92, 2.87, 2.82, 2.77, 2.72, 2.67, 2.62, 2.57, 2.52}, // 13
		{3.43, 3.38, 3.33, 3.28, 3.23, 3.18, 3.13, 3.08, 3.03, 2.98, 2.93, 2.88, 2.83, 2.78, 2.73, 2.68, 2.63, 2.58, 2.53, 2.48}, // 14
		{3.40, 3.35, 3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75, 2.70, 2.65, 2.60, 2.55, 2.50, 2.45}, // 15
		{3.38, 3.33, 3.28, 3.23, 3.18, 3.13, 3.08, 3.03, 2.98, 2.93, 2.88, 2.83, 2.78, 2.73, 2.68, 2.63, 2.58, 2.53, 2.48, 2.43}, // 16
		{3.37, 3.32, 3.27, 3.22, 3.17, 3.12, 3.07, 3.02, 2.97, 2.92, 2.87, 2.82, 2.77, 2.72, 2.67, 2.62, 2.57, 2.52, 2.47, 2.42}, // 17
		{3.36, 3.31, 3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66, 2.61, 2.56, 2.51, 2.46, 2.41}, // 18
		{3.36, 3.31, 3.26, 3.21, 3.16, 3.11, 3.06, 3.01, 2.96, 2.91, 2.86, 2.81, 2.76, 2.71, 2.66, 2.61, 2.56, 2.51, 2.46, 2.41}, // 19
		{3.35, 3.30, 3.25, 3.20, 3.15, 3.10, 3.05, 3.00, 2.95, 2.90, 2.85, 2.80, 2.75, 2.70, 2.65, 2.60, 2.55, 2.50, 2.45, 2.40}, // 20
	}

	braceMale = table{
		{27.2, 26.4, 25.6, 24.8, 24.0, 23.2, 22.4, 21.6, 20.8, 20.0, 19.2, 18.4, 17.6, 16.8, 16.0, 15.2, 14.4, 13.6, 12.8, 12.0}, // 10
		{26.8, 26.0, 25.2, 24.4, 23.6, 22.8, 22.0, 21.2, 20.4, 19.6, 18.8, 18.0, 17.2, 16.4, 15.6, 14.8, 14.0, 13.2, 12.4, 11.6}, // 11
		{26.3, 25.5, 24.7, 23.9, 23.1, 22.3, 21.5, 20.7, 19.9, 19.1, 18.3, 17.5, 16.7, 15.9, 15.1, 14.3, 13.5, 12.7, 11.9, 11.1}, // 12
		{26.0, 25.2, 24.4, 23.6, 22.8, 22.0, 21.2, 20.4, 19.6, 18.8, 18.0, 17.2, 16.4, 15.6, 14.8, 14.0, 13.2, 12.4, 11.6, 10.8}, // 13
		{25.8, 25.0, 24.2, 23.4, 22.6, 21.8, 21.0, 20.2, 19.4, 18.6, 17.8, 17.0, 16.2, 15.4, 14.6, 13.8, 13.0, 12.2, 11.4, 10.6}, // 14
		{25.7, 24.9, 24.1, 23.3, 22.5, 21.7, 20.9, 20.1, 19.3, 18.5, 17.7, 16.9, 16.1, 15.3, 14.5, 13.7, 12.9, 12.1, 11.3, 10.5}, // 15
		{25.7, 24.9, 24.1, 23.3, 22.5, 21.7, 20.9, 20.1, 19.3, 18.5, 17.7, 16.9, 16.1, 15.3, 14.5, 13.7, 12.9, 12.1, 11.3, 10.5}, // 16
		{25.9, 25.1, 24.3, 23.5, 22.7, 21.9, 21.1, 20.3, 19.5, 18.7, 17.9, 17.1, 16.3, 15.5, 14.7, 13.9, 13.1, 12.3, 11.5, 10.7}, // 17
		{26.3, 25.5, 24.7, 23.9, 23.1, 22.3, 21.5, 20.7, 19.9, 19.1, 18.3, 17.5, 16.7, 15.9, 15.1, 14.3, 13.5, 12.7, 11.9, 11.1}, // 18
		{26.6, 25.8, 25.0, 24.2, 23.4, 22.6, 21.8, 21.0, 20.2, 19.4, 18.6, 17.8, 17.0, 16.2, 15.4, 14.6, 13.8, 13.0, 12.2, 11.4}, // 19
		{27.0, 26.2, 25.4, 24.6, 23.8, 23.0, 22.2, 21.4, 20.6, 19.8, 19.0, 18.2, 17.4, 16.6, 15.8, 15.0, 14.2, 13.4, 12.6, 11.8}, // 20
	}

	braceFemale = table{
		{27.2, 26.4, 25.6, 24.8, 24.0, 23.2, 22.4, 21.6, 20.8, 20.0, 19.2, 18.4, 17.6, 16.8, 16.0, 15.2, 14.4, 13.6, 12.8, 12.0}, // 10
		{26.8, 26.0, 25.2, 24.4, 23.6, 22.8, 22.0, 21.2, 20.4, 19.6, 18.8, 18.0, 17.2, 16.4, 15.6, 14.8, 14.0, 13.2, 12.4, 11.6}, // 11
		{26.4, 25.6, 24.8, 24.0, 23.2, 22.4, 21.6, 20.8, 20.0, 19.2, 18.4, 17.6, 16.8, 16.0, 15.2, 14.4, 13.6, 12.8, 12.0, 11.2}, // 12
		{26.2, 25.4, 24.6, 23.8, 23.0, 22.2, 21.4, 20.6, 19.8, 19.0, 18.2, 17.4, 16.6, 15.8, 15.0, 14.2, 13.4, 12.6, 11.8, 11.0}, // 13
		{26.1, 25.3, 24.5, 23.7, 22.9, 22.1, 21.3, 20.5, 19.7, 18.9, 18.1, 17.3, 16.5, 15.7, 14.9, 14.1, 13.3, 12.5, 11.7, 10.9}, // 14
		{26.1, 25.3, 24.5, 23.7, 22.9, 22.1, 21.3, 20.5, 19.7, 18.9, 18.1, 17.3, 16.5, 15.7, 14.9, 14.1, 13.3, 12.5, 11.7, 10.9}, // 15
		{26.2, 25.4, 24.6, 23.8, 23.0, 22.2, 21.4, 20.6, 19.8, 19.0, 18.2, 17.4, 16.6, 15.8, 15.0, 14.2, 13.4, 12.6, 11.8, 11.0}, // 16
		{26.5, 25.7, 24.9, 24.1, 23.3, 22.5, 21.7, 20.9, 20.1, 19.3, 18.5, 17.7, 16.9, 16.1, 15.3, 14.5, 13.7, 12.9, 12.1, 11.3}, // 17
		{26.8, 26.0, 25.2, 24.4, 23.6, 22.8, 22.0, 21.2, 20.4, 19.6, 18.8, 18.0, 17.2, 16.4, 15.6, 14.8, 14.0, 13.2, 12.4, 11.6}, // 18
		{27.0, 26.2, 25.4, 24.6, 23.8, 23.0, 22.2, 21.4, 20.6, 19.8, 19.0, 18.2, 17.4, 16.6, 15.8, 15.0, 14.2, 13.4, 12.6, 11.8}, // 19
		{27.2, 26.4, 25.6, 24.8, 24.0, 23.2, 22.4, 21.6, 20.8, 20.0, 19.2, 18.4, 17.6, 16.8, 16.0, 15.2, 14.4, 13.6, 12.8, 12.0}, // 20
	}

	hexagonMale = table{
		{9.80, 9.60, 9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00}, // 10
		{9.60, 9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80}, // 11
		{9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60}, // 12
		{9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60, 5.40}, // 13
		{9.10, 8.90, 8.70, 8.50, 8.30, 8.10, 7.90, 7.70, 7.50, 7.30, 7.10, 6.90, 6.70, 6.50, 6.30, 6.10, 5.90, 5.70, 5.50, 5.30}, // 14
		{8.90, 8.70, 8.50, 8.30, 8.10, 7.90, 7.70, 7.50, 7.30, 7.10, 6.90, 6.70, 6.50, 6.30, 6.10, 5.90, 5.70, 5.50, 5.30, 5.10}, // 15
		{8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60, 5.40, 5.20, 5.00}, // 16
		{8.70, 8.50, 8.30, 8.10, 7.90, 7.70, 7.50, 7.30, 7.10, 6.90, 6.70, 6.50, 6.30, 6.10, 5.90, 5.70, 5.50, 5.30, 5.10, 4.90}, // 17
		{8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60, 5.40, 5.20, 5.00, 4.80}, // 18
		{8.50, 8.30, 8.10, 7.90, 7.70, 7.50, 7.30, 7.10, 6.90, 6.70, 6.50, 6.30, 6.10, 5.90, 5.70, 5.50, 5.30, 5.10, 4.90, 4.70}, // 19
		{8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60, 5.40, 5.20, 5.00, 4.80, 4.60}, // 20
	}

	hexagonFemale = table{
		{9.80, 9.60, 9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00}, // 10
		{9.60, 9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80}, // 11
		{9.40, 9.20, 9.00, 8.80, 8.60, 8.40, 8.20, 8.00, 7.80, 7.60, 7.40, 7.20, 7.00, 6.80, 6.60, 6.40, 6.20, 6.00, 5.80, 5.60}, // 12
		{8.00, 7.90, 7.80, 7.70, 7.60, 7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10}, // 13
		{7.90, 7.80, 7.70, 7.60, 7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00}, // 14
		{7.80, 7.70, 7.60, 7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90}, // 15
		{7.70, 7.60, 7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90, 5.80}, // 16
		{7.60, 7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90, 5.80, 5.70}, // 17
		{7.50, 7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90, 5.80, 5.70, 5.60}, // 18
		{7.40, 7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90, 5.80, 5.70, 5.60, 5.50}, // 19
		{7.30, 7.20, 7.10, 7.00, 6.90, 6.80, 6.70, 6.60, 6.50, 6.40, 6.30, 6.20, 6.10, 6.00, 5.90, 5.80, 5.70, 5.60, 5.50, 5.40}, // 20
	}

	medicimbalMale = table{
		{2.00, 2.20, 2.40, 2.60, 2.80, 3.00, 3.20, 3.40, 3.60, 3.80, 4.20, 4.60, 5.00, 5.40, 5.80, 6.20, 6.60, 7.00, 7.40, 7.80}, // 10
		{3.50, 3.70, 3.90, 4.10, 4.30, 4.50, 4.70, 4.90, 5.10, 5.30, 5.70, 6.10, 6.50, 6.90, 7.30, 7.70, 8.10, 8.50, 8.90, 9.30}, // 11
		{5.10, 5.30, 5.50, 5.70, 5.90, 6.10, 6.30, 6.50, 6.70, 6.90, 7.30, 7.70, 8.10, 8.50, 8.90, 9.30, 9.70, 10.10, 10.50, 10.90}, // 12
		{6.20, 6.40, 6.60, 6.80, 7.00, 7.20, 7.40, 7.60, 7.80, 8.00, 8.40, 8.80, 9.20, 9.60, 10.00, 10.40, 10.80, 11.20, 11.60, 12.00}, // 13
		{6.90, 7.10, 7.30, 7.50, 7.70, 7.90, 8.10, 8.30, 8.50, 8.70, 9.10, 9.50, 9.90, 10.30, 10.70, 11.10, 11.50, 11.90, 12.30, 12.70}, // 14
		{7.40, 7.60, 7.80, 8.00, 8.20, 8.40, 8.60, 8.80, 9.00, 9.20, 9.60, 10.00, 10.40, 10.80, 11.20, 11.60, 12.00, 12.40, 12.80, 13.20}, // 15
		{7.80, 8.00, 8.20, 8.40, 8.60, 8.80, 9.00, 9.20, 9.40, 9.60, 10.00, 10.40, 10.80, 11.20, 11.60, 12.00, 12.40, 12.80, 13.20, 13.60}, // 16
		{8.15, 8.35, 8.55, 8.75, 8.95, 9.15, 9.35, 9.55, 9.75, 9.95, 10.35, 10.75, 11.15, 11.55, 11.95, 12.35, 12.75, 13.15, 13.55, 13.95}, // 17
		{8.40, 8.60, 8.80, 9.00, 9.20, 9.40, 9.60, 9.80, 10.00, 10.20, 10.60, 11.00, 11.40, 11.80, 12.20, 12.60, 13.00, 13.40, 13.80, 14.20}, // 18
		{8.55, 8.75, 8.95, 9.15, 9.35, 9.55, 9.75, 9.95, 10.15, 10.35, 10.75, 11.15, 11.55, 11.95, 12.35, 12.75, 13.15, 13.55, 13.95, 14.35}, // 19
		{8.70, 8.90, 9.10, 9.30, 9.50, 9.70, 9.90, 10.10, 10.30, 10.50, 10.90, 11.30, 11.70, 12.10, 12.50, 12.90, 13.30, 13.70, 14.10, 14.50}, // 20
	}

	medicimbalFemale = table{
		{2.00, 2.20, 2.40, 2.60, 2.80, 3.00, 3.20, 3.40, 3.60, 3.80, 4.20, 4.60, 5.00, 5.40, 5.80, 6.20, 6.60, 7.00, 7.40, 7.80}, // 10
		{3.20, 3.40, 3.60, 3.80, 4.00, 4.20, 4.40, 4.60, 4.80, 5.00, 5.40, 5.80, 6.20, 6.60, 7.00, 7.40, 7.80, 8.20, 8.60, 9.00}, // 11
		{4.20, 4.40, 4.60, 4.80, 5.00, 5.20, 5.40, 5.60, 5.80, 6.00, 6.40, 6.80, 7.20, 7.60, 8.00, 8.40, 8.80, 9.20, 9.60, 10.00}, // 12
		{5.00, 5.20, 5.40, 5.60, 5.80, 6.00, 6.20, 6.40, 6.60, 6.80, 7.20, 7.60, 8.00, 8.40, 8.80, 9.20, 9.60, 10.00, 10.40, 10.80}, // 13
		{5.40, 5.60, 5.80, 6.00, 6.20, 6.40, 6.60, 6.80, 7.00, 7.20, 7.60, 8.00, 8.40, 8.80, 9.20, 9.60, 10.00, 10.40, 10.80, 11.20}, // 14
		{5.70, 5.90, 6.10, 6.30, 6.50, 6.70, 6.90, 7.10, 7.30, 7.50, 7.90, 8.30, 8.70, 9.10, 9.50, 9.90, 10.30, 10.70, 11.10, 11.50}, // 15
		{5.95, 6.15, 6.35, 6.55, 6.75, 6.95, 7.15, 7.35, 7.55, 7.75, 8.15, 8.55, 8.95, 9.35, 9.75, 10.15, 10.55, 10.95, 11.35, 11.75}, // 16
		{6.15, 6.35, 6.55, 6.75, 6.95, 7.15, 7.35, 7.55, 7.75, 7.95, 8.35, 8.75, 9.15, 9.55, 9.95, 10.35, 10.75, 11.15, 11.55, 11.95}, // 17
		{6.30, 6.50, 6.70, 6.90, 7.10, 7.30, 7.50, 7.70, 7.90, 8.10, 8.50, 8.90, 9.30, 9.70, 10.10, 10.50, 10.90, 11.30, 11.70, 12.10}, // 18
		{6.35, 6.55, 6.75, 6.95, 7.15, 7.35, 7.55, 7.75, 7.95, 8.15, 8.55, 8.95, 9.35, 9.75, 10.15, 10.55, 10.95, 11.35, 11.75, 12.15}, // 19
		{6.40, 6.60, 6.80, 7.00, 7.20, 7.40, 7.60, 7.80, 8.00, 8.20, 8.60, 9.00, 9.40, 9.80, 10.20, 10.60, 11.00, 11.40, 11.80, 12.20}, // 20
	}

	tripleJumpMale = table{
		{2.70, 2.86, 3.03, 3.19, 3.35, 3.51, 3.67, 3.84, 4.00, 4.16, 4.32, 4.48, 4.65, 4.81, 4.97, 5.13, 5.29, 5.46, 5.62, 5.78}, // 10
		{3.09, 3.25, 3.42, 3.58, 3.74, 3.90, 4.06, 4.23, 4.39, 4.55, 4.71, 4.87, 5.04, 5.20, 5.36, 5.52, 5.68, 5.85, 6.01, 6.17}, // 11
		{3.48, 3.64, 3.81, 3.97, 4.13, 4.29, 4.45, 4.62, 4.78, 4.94, 5.10, 5.26, 5.43, 5.59, 5.75, 5.91, 6.07, 6.24, 6.40, 6.56}, // 12
		{3.93, 4.09, 4.26, 4.42, 4.58, 4.74, 4.90, 5.07, 5.23, 5.39, 5.55, 5.71, 5.88, 6.04, 6.20, 6.36, 6.52, 6.69, 6.85, 7.01}, // 13
		{4.39, 4.55, 4.72, 4.88, 5.04, 5.20, 5.36, 5.53, 5.69, 5.85, 6.01, 6.17, 6.34, 6.50, 6.66, 6.82, 6.98, 7.15, 7.31, 7.47}, // 14
		{4.87, 5.03, 5.20, 5.36, 5.52, 5.68, 5.84, 6.01, 6.17, 6.33, 6.49, 6.65, 6.82, 6.98, 7.14, 7.30, 7.46, 7.63, 7.79, 7.95}, // 15
		{5.10, 5.26, 5.43, 5.59, 5.75, 5.91, 6.07, 6.24, 6.40, 6.56, 6.72, 6.88, 7.05, 7.21, 7.37, 7.53, 7.69, 7.86, 8.02, 8.18}, // 16
		{5.25, 5.41, 5.58, 5.74, 5.90, 6.06, 6.22, 6.39, 6.55, 6.71, 6.87, 7.03, 7.20, 7.36, 7.52, 7.68, 7.84, 8.01, 8.17, 8.33}, // 17
		{5.40, 5.56, 5.73, 5.89, 6.05, 6.21, 6.37, 6.54, 6.70, 6.86, 7.02, 7.18, 7.35, 7.51, 7.67, 7.83, 7.99, 8.16, 8.32, 8.48}, // 18
		{5.49, 5.65, 5.82, 5.98, 6.14, 6.30, 6.46, 6.63, 6.79, 6.95, 7.11, 7.27, 7.44, 7.60, 7.76, 7.92, 8.08, 8.25, 8.41, 8.57}, // 19
		{5.56, 5.72, 5.89, 6.05, 6.21, 6.37, 6.53, 6.70, 6.86, 7.02, 7.18, 7.34, 7.51, 7.67, 7.83, 7.99, 8.15, 8.32, 8.48, 8.64}, // 20
	}

	tripleJumpFemale = table{
		{2.50, 2.66, 2.83, 2.99, 3.15, 3.31, 3.47, 3.64, 3.80, 3.96, 4.12, 4.28, 4.45, 4.61, 4.77, 4.93, 5.09, 5.26, 5.42, 5.58}, // 10
		{2.74, 2.90, 3.07, 3.23, 3.39, 3.55, 3.71, 3.88, 4.04, 4.20, 4.36, 4.52, 4.69, 4.85, 5.01, 5.17, 5.33, 5.50, 5.66, 5.82}, // 11
		{3.02, 3.18, 3.35, 3.51, 3.67, 3.83, 3.99, 4.16, 4.32, 4.48, 4.64, 4.80, 4.97, 5.13, 5.29, 5.45, 5.61, 5.78, 5.94, 6.10}, // 12
		{3.28, 3.44, 3.61, 3.77, 3.93, 4.09, 4.25, 4.42, 4.58, 4.74, 4.90, 5.06, 5.23, 5.39, 5.55, 5.71, 5.87, 6.04, 6.20, 6.36}, // 13
		{3.51, 3.67, 3.84, 4.00, 4.16, 4.32, 4.48, 4.65, 4.81, 4.97, 5.13, 5.29, 5.46, 5.62, 5.78, 5.94, 6.10, 6.27, 6.43, 6.59}, // 14
		{3.74, 3.90, 4.07, 4.23, 4.39, 4.55, 4.71, 4.88, 5.04, 5.20, 5.36, 5.52, 5.69, 5.85, 6.01, 6.17, 6.33, 6.50, 6.66, 6.82}, // 15
		{3.97, 4.13, 4.30, 4.46, 4.62, 4.78, 4.94, 5.11, 5.27, 5.43, 5.59, 5.75, 5.92, 6.08, 6.24, 6.40, 6.56, 6.73, 6.89, 7.05}, // 16
		{4.10, 4.26, 4.43, 4.59, 4.75, 4.91, 5.07, 5.24, 5.40, 5.56, 5.72, 5.88, 6.05, 6.21, 6.37, 6.53, 6.69, 6.86, 7.02, 7.18}, // 17
		{4.17, 4.33, 4.50, 4.66, 4.82, 4.98, 5.14, 5.31, 5.47, 5.63, 5.79, 5.95, 6.12, 6.28, 6.44, 6.60, 6.76, 6.93, 7.09, 7.25}, // 18
		{4.19, 4.35, 4.52, 4.68, 4.84, 5.00, 5.16, 5.33, 5.49, 5.65, 5.81, 5.97, 6.14, 6.30, 6.46, 6.62, 6.78, 6.95, 7.11, 7.27}, // 19
		{4.19, 4.35, 4.52, 4.68, 4.84, 5.00, 5.16, 5.33, 5.49, 5.65, 5.81, 5.97, 6.14, 6.30, 6.46, 6.62, 6.78, 6.95, 7.11, 7.27}, // 20
	}

	jetMale = table{
		{168, 176, 184, 192, 200, 208, 216, 224, 232, 240, 248, 256, 264, 272, 280, 288, 296, 304, 312, 320}, // 10
		{198, 206, 214, 222, 230, 238, 246, 254, 262, 270, 278, 286, 294, 302, 310, 318, 326, 334, 342, 350}, // 11
		{228, 236, 244, 252, 260, 268, 276, 284, 292, 300, 308, 316, 324, 332, 340, 348, 356, 364, 372, 380}, // 12
		{258, 266, 274, 282, 290, 298, 306, 314, 322, 330, 338, 346, 354, 362, 370, 378, 386, 394, 402, 410}, // 13
		{283, 291, 299, 307, 315, 323, 331, 339, 347, 355, 363, 371, 379, 387, 395, 403, 411, 419, 427, 435}, // 14
		{303, 311, 319, 327, 335, 343, 351, 359, 367, 375, 383, 391, 399, 407, 415, 423, 431, 439, 447, 455}, // 15
		{323, 331, 339, 347, 355, 363, 371, 379, 387, 395, 403, 411, 419, 427, 435, 443, 451, 459, 467, 475}, // 16
		{343, 351, 359, 367, 375, 383, 391, 399, 407, 415, 423, 431, 439, 447, 455, 463, 471, 479, 487, 495}, // 17
		{358, 366, 374, 382, 390, 398, 406, 414, 422, 430, 438, 446, 454, 462, 470, 478, 486, 494, 502, 510}, // 18
		{368, 376, 384, 392, 400, 408, 416, 424, 432, 440, 448, 456, 464, 472, 480, 488, 496, 504, 512, 520}, // 19
		{373, 381, 389, 397, 405, 413, 421, 429, 437, 445, 453, 461, 469, 477, 485, 493, 501, 509, 517, 525}, // 20
	}

	jetFemale = table{
		{168, 175, 183, 190, 198, 205, 213, 220, 228, 235, 243, 250, 258, 265, 273, 280, 288, 295, 303, 310}, // 10
		{198, 205, 213, 220, 228, 235, 243, 250, 258, 265, 273, 280, 288, 295, 303, 310, 318, 325, 333, 340}, // 11
		{226, 233, 241, 248, 256, 263, 271, 278, 286, 293, 301, 308, 316, 323, 331, 338, 346, 353, 361, 368}, // 12
		{248, 255, 263, 270, 278, 285, 293, 300, 308, 315, 323, 330, 338, 345, 353, 360, 368, 375, 383, 390}, // 13
		{266, 273, 281, 288, 296, 303, 311, 318, 326, 333, 341, 348, 356, 363, 371, 378, 386, 393, 401, 408}, // 14
		{280, 287, 295, 302, 310, 317, 325, 332, 340, 347, 355, 362, 370, 377, 385, 392, 400, 407, 415, 422}, // 15
		{293, 300, 308, 315, 323, 330, 338, 345, 353, 360, 368, 375, 383, 390, 398, 405, 413, 420, 428, 435}, // 16
		{303, 310, 318, 325, 333, 340, 348, 355, 363, 370, 378, 385, 393, 400, 408, 415, 423, 430, 438, 445}, // 17
		{311, 318, 326, 333, 341, 348, 356, 363, 371, 378, 386, 393, 401, 408, 416, 423, 431, 438, 446, 453}, // 18
		{316, 323, 331, 338, 346, 353, 361, 368, 376, 383, 391, 398, 406, 413, 421, 428, 436, 443, 451, 458}, // 19
		{318, 325, 333, 340, 348, 355, 363, 370, 378, 385, 393, 400, 408, 415, 423, 430, 438, 445, 453, 460}, // 20
	}

	beepTestMale = table{
		{19, 22, 26, 30, 34, 37, 41, 45, 49, 52, 56, 60, 64, 67, 71, 75, 79, 82, 86, 90}, // 10
		{22, 26, 30, 33, 37, 41, 45, 49, 52, 56, 60, 64, 67, 71, 75, 79, 83, 86, 90, 94}, // 11
		{25, 29, 33, 37, 41, 45, 48, 52, 56, 60, 64, 67, 71, 75, 79, 83, 87, 90, 94, 98}, // 12
		{29, 33, 37, 40, 44, 48, 52, 56, 60, 64, 67, 71, 75, 79, 83, 87, 90, 94, 98, 102}, // 13
		{35, 39, 43, 47, 51, 55, 59, 63, 67, 71, 74, 78, 82, 86, 90, 94, 98, 102, 106, 110}, // 14
		{42, 46, 50, 54, 58, 62, 66, 70, 74, 79, 83, 87, 91, 95, 99, 103, 107, 111, 115, 119}, // 15
		{43, 47, 52, 56, 61, 65, 69, 74, 78, 83, 87, 92, 96, 100, 105, 109, 114, 118, 123, 127}, // 16
		{46, 51, 55, 60, 65, 70, 75, 79, 84, 89, 94, 99, 103, 108, 113, 118, 123, 127, 132, 137}, // 17
		{47, 51, 56, 61, 66, 71, 75, 80, 85, 90, 95, 100, 104, 109, 114, 119, 124, 128, 133, 138}, // 18
		{48, 53, 57, 62, 67, 72, 77, 81, 86, 91, 96, 101, 105, 110, 115, 120, 125, 129, 134, 139}, // 19
		{51, 55, 60, 65, 70, 74, 79, 84, 88, 93, 98, 102, 107, 112, 117, 121, 126, 131, 135, 140}, // 20
	}

	beepTestFemale = table{
		{12, 15, 18, 20, 23, 26, 29, 32, 34, 37, 40, 43, 45, 48, 51, 54, 57, 59, 62, 65}, // 10
		{15, 18, 21, 24, 27, 30, 33, 36, 39, 42, 45, 47, 50, 53, 56, 59, 62, 65, 68, 71}, // 11
		{18, 21, 24, 27, 31, 34, 37, 40, 43, 46, 49, 52, 55, 58, 62, 65, 68, 71, 74, 77}, // 12
		{23, 27, 30, 33, 36, 40, 43, 46, 49, 53, 56, 59, 62, 66, 69, 72, 75, 79, 82, 85}, // 13
		{26, 29, 33, 37, 40, 44, 47, 51, 54, 58, 61, 65, 68, 72, 75, 79, 82, 86, 89, 93}, // 14
		{29, 33, 36, 40, 44, 48, 51, 55, 59, 63, 66, 70, 74, 78, 81, 85, 89, 93, 96, 100}, // 15
		{33, 37, 41, 46, 50, 54, 58, 62, 66, 70, 75, 79, 83, 87, 91, 95, 100, 104, 108, 112}, // 16
		{37, 41, 45, 49, 54, 58, 62, 66, 70, 74, 78, 82, 86, 90, 95, 99, 103, 107, 111, 115}, // 17
		{38, 42, 46, 51, 55, 59, 63, 67, 72, 76, 80, 84, 89, 93, 97, 101, 105, 110, 114, 118}, // 18
		{39, 43, 48, 52, 56, 61, 65, 69, 73, 78, 82, 86, 91, 95, 99, 104, 108, 112, 117, 121}, // 19
		{40, 45, 49, 54, 58, 62, 67, 71, 76, 80, 84, 89, 93, 98, 102, 106, 111, 115, 120, 124}, // 20
	}

	yTestMale = table{
		{0.41, 0.41, 0.42, 0.42, 0.43, 0.44, 0.44, 0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52}, // 10
		{0.42, 0.43, 0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54}, // 11
		{0.43, 0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54}, // 12
		{0.43, 0.44, 0.44, 0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55}, // 13
		{0.44, 0.44, 0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52, 0.53, 0.53, 0.54, 0.54, 0.55}, // 14
		{0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54, 0.55, 0.55}, // 15
		{0.44, 0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52, 0.53, 0.53, 0.54, 0.54, 0.55, 0.56}, // 16
		{0.44, 0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55, 0.55, 0.56}, // 17
		{0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52, 0.53, 0.53, 0.54, 0.54, 0.55, 0.56, 0.56}, // 18
		{0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55, 0.55, 0.56, 0.56}, // 19
		{0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54, 0.55, 0.55, 0.56, 0.57}, // 20
	}

	yTestFemale = table{
		{0.41, 0.41, 0.42, 0.42, 0.43, 0.44, 0.44, 0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52}, // 10
		{0.42, 0.42, 0.43, 0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53}, // 11
		{0.42, 0.43, 0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54}, // 12
		{0.43, 0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54}, // 13
		{0.43, 0.44, 0.44, 0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55}, // 14
		{0.43, 0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54, 0.55}, // 15
		{0.44, 0.44, 0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55, 0.55}, // 16
		{0.44, 0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54, 0.55, 0.55}, // 17
		{0.44, 0.45, 0.45, 0.46, 0.47, 0.47, 0.48, 0.48, 0.49, 0.50, 0.50, 0.51, 0.51, 0.52, 0.53, 0.53, 0.54, 0.54, 0.55, 0.56}, // 18
		{0.44, 0.45, 0.46, 0.46, 0.47, 0.47, 0.48, 0.49, 0.49, 0.50, 0.50, 0.51, 0.52, 0.52, 0.53, 0.53, 0.54, 0.55, 0.55, 0.56}, // 19
		{0.45, 0.45, 0.46, 0.46, 0.47, 0.48, 0.48, 0.49, 0.49, 0.50, 0.51, 0.51, 0.52, 0.52, 0.53, 0.54, 0.54, 0.55, 0.55, 0.56}, // 20
	}
)
