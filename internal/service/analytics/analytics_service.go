package analytics

import (
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/shopspring/decimal"
	"math"
)

const (
	roundPlaces = 4
	predictions = 100
)

// опыт D1: айран, 7 суток
var d1 = []domain.GroupAcidity{
	{Group: "Контроль", PH: 3.69, Acidity: 91, LAB: 1.2e6},
	{Group: "Опыт 1 (добавка 1)", PH: 3.65, Acidity: 92, LAB: 1.6e6},
	{Group: "Опыт 2 (добавка 2)", PH: 3.51, Acidity: 97, LAB: 2.1e6},
}

// опыт D2: айран, 14 суток
var d2 = []domain.GroupComposition{
	{Group: "Контроль", Protein: 1.96, Carbohydrates: 2.73, Fat: 2.05, Moisture: 92.56, AOAWater: 0.10, AOAFat: 0.031, VitaminC: 0.880},
	{Group: "Опыт 1", Protein: 2.05, Carbohydrates: 3.06, Fat: 1.93, Moisture: 92.26, AOAWater: 0.15, AOAFat: 0.043, VitaminC: 0.904},
	{Group: "Опыт 2", Protein: 2.23, Carbohydrates: 3.85, Fat: 2.71, Moisture: 90.40, AOAWater: 0.12, AOAFat: 0.041, VitaminC: 0.897},
}

var dynamicsHours = []float64{2, 4, 6, 8, 10}

var dynamics = []domain.Series{
	{Name: "Контроль", X: dynamicsHours, Y: []float64{4.515, 4.433, 4.386, 4.352, 4.325}},
	{Name: "Опыт 1", X: dynamicsHours, Y: []float64{4.464, 4.394, 4.352, 4.323, 4.300}},
	{Name: "Опыт 2", X: dynamicsHours, Y: []float64{4.419, 4.333, 4.282, 4.246, 4.218}},
}

var experiment = domain.Series{
	Name: "Экспериментальные точки",
	X:    []float64{1, 2, 3, 4, 5, 6, 8, 10},
	Y:    []float64{4.65, 4.50, 4.33, 4.20, 4.05, 3.90, 3.78, 3.70},
}

// Service serves the fixed illustrative datasets and their pH(t) fits.
type Service struct {
	report domain.Analytics
}

func NewAnalyticsService() *Service {
	return &Service{report: build()}
}

func (s *Service) Report() domain.Analytics {
	return s.report
}

func round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(roundPlaces).InexactFloat64()
}

func build() domain.Analytics {
	acidity := make([]domain.GroupAcidity, len(d1))
	for i, g := range d1 {
		g.Log10LAB = round(math.Log10(g.LAB))
		acidity[i] = g
	}

	return domain.Analytics{
		D1:         acidity,
		D2:         append([]domain.GroupComposition(nil), d2...),
		PHDynamics: append([]domain.Series(nil), dynamics...),
		Experiment: experiment,
		Fits: []domain.CurveFit{
			fitLogarithmic(experiment.X, experiment.Y),
			fitHyperbolic(experiment.X, experiment.Y),
		},
	}
}

// fitLogarithmic fits pH = α − β·ln t.
func fitLogarithmic(t, ph []float64) domain.CurveFit {
	x := transform(t, math.Log)
	intercept, slope := FitLine(x, ph)
	alpha, beta := intercept, -slope

	return domain.CurveFit{
		Model:     "logarithmic",
		Formula:   "pH = α − β·ln(t)",
		Intercept: round(alpha),
		Slope:     round(beta),
		R2:        round(rSquared(x, ph, intercept, slope)),
		Predicted: predict("Логарифмическая", func(v float64) float64 { return alpha - beta*math.Log(v) }),
	}
}

// fitHyperbolic fits pH = a + b/t.
func fitHyperbolic(t, ph []float64) domain.CurveFit {
	x := transform(t, func(v float64) float64 { return 1 / v })
	a, b := FitLine(x, ph)

	return domain.CurveFit{
		Model:     "hyperbolic",
		Formula:   "pH = a + b/t",
		Intercept: round(a),
		Slope:     round(b),
		R2:        round(rSquared(x, ph, a, b)),
		Predicted: predict("Гиперболическая", func(v float64) float64 { return a + b/v }),
	}
}

func transform(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// FitLine is the ordinary least squares line y = intercept + slope·x.
func FitLine(x, y []float64) (intercept, slope float64) {
	n := float64(len(x))
	if n == 0 {
		return 0, 0
	}

	var sx, sy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
	}
	mx, my := sx/n, sy/n

	var sxy, sxx float64
	for i := range x {
		sxy += (x[i] - mx) * (y[i] - my)
		sxx += (x[i] - mx) * (x[i] - mx)
	}
	if sxx == 0 {
		return my, 0
	}

	slope = sxy / sxx
	return my - slope*mx, slope
}

func rSquared(x, y []float64, intercept, slope float64) float64 {
	var my float64
	for _, v := range y {
		my += v
	}
	my /= float64(len(y))

	var ssRes, ssTot float64
	for i := range x {
		e := y[i] - (intercept + slope*x[i])
		ssRes += e * e
		ssTot += (y[i] - my) * (y[i] - my)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// predict samples f on t ∈ [1, 10].
func predict(name string, f func(float64) float64) domain.Series {
	s := domain.Series{Name: name, X: make([]float64, predictions), Y: make([]float64, predictions)}
	step := 9.0 / float64(predictions-1)
	for i := 0; i < predictions; i++ {
		t := 1 + step*float64(i)
		s.X[i] = round(t)
		s.Y[i] = round(f(t))
	}
	return s
}
