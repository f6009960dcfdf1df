package dto

// AddSampleRequest is the "new batch" form. Empty fields take the page defaults.
type AddSampleRequest struct {
	RegNumber    string   `json:"reg_number" form:"reg_number" validate:"max=64"`
	DateReceived string   `json:"date_received" form:"date_received" validate:"omitempty,datetime=2006-01-02"`
	StorageDays  int64    `json:"storage_days" form:"storage_days" validate:"gte=0"`
	TemperatureC *float64 `json:"temperature_c" form:"temperature_c"`
	HumidityPct  *float64 `json:"humidity_pct" form:"humidity_pct" validate:"omitempty,gte=0,lte=100"`
	Notes        string   `json:"notes" form:"notes" validate:"max=1024"`
}

// StageParamsRequest records the fields of one step for an existing batch.
type StageParamsRequest struct {
	SampleID *int64            `json:"sample_id" form:"sample_id"`
	Values   map[string]string `json:"values"`
}

type NavigationRequest struct {
	Action    string `json:"action" form:"action" validate:"required,oneof=goto_page select_product select_step reset"`
	Page      string `json:"page" form:"page" validate:"omitempty,oneof=home product analytics"`
	ProductID int64  `json:"product_id" form:"product_id" validate:"gte=0"`
	StepID    string `json:"step_id" form:"step_id" validate:"max=64"`
}

type PublishExportResponse struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	URI  string `json:"uri,omitempty"`
}

type UploadResponse struct {
	Store string `json:"store"`
	File  string `json:"file"`
	Rows  int    `json:"rows"`
}

type ParseNumericResponse struct {
	Raw    string   `json:"raw"`
	Value  *float64 `json:"value"`
	Absent bool     `json:"absent"`
}
