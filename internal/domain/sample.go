package domain

import "time"

const DateLayout = "2006-01-02"

// Sample is a logged batch. Nil identifiers mean the stored cell was not an integer.
type Sample struct {
	ID           *int64     `json:"sample_id"`
	ProductID    *int64     `json:"product_id"`
	RegNumber    string     `json:"reg_number"`
	DateReceived *time.Time `json:"date_received"`
	StorageDays  *int64     `json:"storage_days"`
	Conditions   string     `json:"conditions"`
	Notes        string     `json:"notes"`
}

type Measurement struct {
	ID            *int64   `json:"id"`
	SampleID      *int64   `json:"sample_id"`
	Parameter     string   `json:"parameter"`
	Unit          string   `json:"unit"`
	ActualValue   string   `json:"actual_value"`
	ActualNumeric *float64 `json:"actual_numeric"`
	Method        string   `json:"method"`
}

type Vitamin struct {
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	Value        string   `json:"value"`
	ValueNumeric *float64 `json:"value_numeric"`
}

type StorageCondition struct {
	SampleID     *int64   `json:"sample_id"`
	TemperatureC *float64 `json:"temperature_C"`
	HumidityPct  *float64 `json:"humidity_pct"`
	DurationDays *int64   `json:"duration_days"`
}

// StoreStatus describes one delimited store of the data directory.
type StoreStatus struct {
	Name     string `json:"name"`
	File     string `json:"file"`
	Missing  bool   `json:"missing"`
	Rows     int    `json:"rows"`
	Encoding string `json:"encoding,omitempty"`
	Error    string `json:"error,omitempty"`
}

type DataStatus struct {
	Dir     string        `json:"dir"`
	Stores  []StoreStatus `json:"stores"`
	Missing []string      `json:"missing"`
}
