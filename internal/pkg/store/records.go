package store

import (
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
)

func cell(rec map[string]string, col string) string {
	return rec[col]
}

func optInt(rec map[string]string, col string) *int64 {
	v, ok := tabular.ParseIdentifier(rec[col])
	if !ok {
		return nil
	}
	return &v
}

func optFloat(rec map[string]string, col string) *float64 {
	v, ok := tabular.ParseNumericString(rec[col])
	if !ok {
		return nil
	}
	return &v
}

// Products returns rows with a parseable product_id, others cannot be looked up.
func (s *Snapshot) Products() []domain.Product {
	t := s.Table(ResourceProducts)
	out := make([]domain.Product, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		id := optInt(rec, "product_id")
		if id == nil {
			continue
		}
		out = append(out, domain.Product{
			ID:          *id,
			Name:        cell(rec, "name"),
			Type:        cell(rec, "type"),
			Source:      cell(rec, "source"),
			Description: cell(rec, "description"),
		})
	}
	return out
}

func (s *Snapshot) Samples() []domain.Sample {
	t := s.Table(ResourceSamples)
	out := make([]domain.Sample, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		sample := domain.Sample{
			ID:          optInt(rec, "sample_id"),
			ProductID:   optInt(rec, "product_id"),
			RegNumber:   cell(rec, "reg_number"),
			StorageDays: optInt(rec, "storage_days"),
			Conditions:  cell(rec, "conditions"),
			Notes:       cell(rec, "notes"),
		}
		if d, ok := tabular.ParseDate(rec["date_received"]); ok {
			sample.DateReceived = &d
		}
		out = append(out, sample)
	}
	return out
}

func (s *Snapshot) Measurements() []domain.Measurement {
	t := s.Table(ResourceMeasurements)
	out := make([]domain.Measurement, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		out = append(out, domain.Measurement{
			ID:            optInt(rec, "id"),
			SampleID:      optInt(rec, "sample_id"),
			Parameter:     cell(rec, "parameter"),
			Unit:          cell(rec, "unit"),
			ActualValue:   cell(rec, "actual_value"),
			ActualNumeric: optFloat(rec, "actual_value"),
			Method:        cell(rec, "method"),
		})
	}
	return out
}

func (s *Snapshot) Vitamins() []domain.Vitamin {
	t := s.Table(ResourceVitamins)
	out := make([]domain.Vitamin, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		out = append(out, domain.Vitamin{
			Name:         cell(rec, "name"),
			Unit:         cell(rec, "unit"),
			Value:        cell(rec, "value"),
			ValueNumeric: optFloat(rec, "value"),
		})
	}
	return out
}

func (s *Snapshot) StorageConditions() []domain.StorageCondition {
	t := s.Table(ResourceStorage)
	out := make([]domain.StorageCondition, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rec := t.Record(i)
		out = append(out, domain.StorageCondition{
			SampleID:     optInt(rec, "sample_id"),
			TemperatureC: optFloat(rec, "temperature_C"),
			HumidityPct:  optFloat(rec, "humidity_pct"),
			DurationDays: optInt(rec, "duration_days"),
		})
	}
	return out
}
