package domain

type GroupAcidity struct {
	Group    string  `json:"group"`
	PH       float64 `json:"ph"`
	Acidity  float64 `json:"acidity_T"`
	LAB      float64 `json:"lab_cfu"`
	Log10LAB float64 `json:"log10_lab"`
}

type GroupComposition struct {
	Group         string  `json:"group"`
	Protein       float64 `json:"protein_pct"`
	Carbohydrates float64 `json:"carbohydrates_pct"`
	Fat           float64 `json:"fat_pct"`
	Moisture      float64 `json:"moisture_pct"`
	AOAWater      float64 `json:"aoa_water_mg_g"`
	AOAFat        float64 `json:"aoa_fat_mg_g"`
	VitaminC      float64 `json:"vit_c_mg_100g"`
}

type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// CurveFit holds a two-coefficient pH(t) model and its predictions.
type CurveFit struct {
	Model     string  `json:"model"`
	Formula   string  `json:"formula"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	R2        float64 `json:"r2"`
	Predicted Series  `json:"predicted"`
}

type Analytics struct {
	D1         []GroupAcidity     `json:"d1"`
	D2         []GroupComposition `json:"d2"`
	PHDynamics []Series           `json:"ph_dynamics"`
	Experiment Series             `json:"experiment"`
	Fits       []CurveFit         `json:"fits"`
}
