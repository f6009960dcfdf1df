package samples

import (
	"context"
	"fmt"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/domain/dto"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"sort"
	"strconv"
	"time"
)

const (
	defaultTemperatureC = 21.0
	defaultHumidityPct  = 64.0

	stageMethod = "этап/форма"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewSamplesService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func belongsTo(s domain.Sample, productID int64) bool {
	return s.ProductID != nil && *s.ProductID == productID
}

// snapshot fails when any of the stores the caller reads could not be loaded.
func (s *Service) snapshot(ctx context.Context, reads ...store.Resource) (*store.Snapshot, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range reads {
		if err = snap.Err(r); err != nil {
			return nil, fmt.Errorf("read %s: %w", r.FileName(), err)
		}
	}
	return snap, nil
}

// ListSamples returns the batches of a product, newest date_received first, undated last.
func (s *Service) ListSamples(ctx context.Context, productID int64) ([]domain.Sample, error) {
	snap, err := s.snapshot(ctx, store.ResourceSamples)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Sample, 0)
	for _, sample := range snap.Samples() {
		if belongsTo(sample, productID) {
			out = append(out, sample)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DateReceived, out[j].DateReceived
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

// ListMeasurements returns measurements of the product's batches by sample_id descending.
// Measurements of unknown batches are skipped.
func (s *Service) ListMeasurements(ctx context.Context, productID int64) ([]domain.Measurement, error) {
	snap, err := s.snapshot(ctx, store.ResourceSamples, store.ResourceMeasurements)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]struct{})
	for _, sample := range snap.Samples() {
		if belongsTo(sample, productID) && sample.ID != nil {
			ids[*sample.ID] = struct{}{}
		}
	}

	out := make([]domain.Measurement, 0)
	for _, m := range snap.Measurements() {
		if m.SampleID == nil {
			continue
		}
		if _, ok := ids[*m.SampleID]; ok {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return *out[i].SampleID > *out[j].SampleID })
	return out, nil
}

// NextSampleID is one past the largest parseable sample_id, 1 for an empty log.
func (s *Service) NextSampleID(ctx context.Context) (int64, error) {
	snap, err := s.snapshot(ctx, store.ResourceSamples)
	if err != nil {
		return 0, err
	}

	var maxID int64
	found := false
	for _, sample := range snap.Samples() {
		if sample.ID == nil {
			continue
		}
		if !found || *sample.ID > maxID {
			maxID = *sample.ID
			found = true
		}
	}
	if !found {
		return 1, nil
	}
	return maxID + 1, nil
}

func DefaultRegNumber(id int64) string {
	return fmt.Sprintf("A-%03d", id)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AddSample appends a new batch of the product and returns it as stored.
func (s *Service) AddSample(ctx context.Context, productID int64, req dto.AddSampleRequest) (domain.Sample, error) {
	id, err := s.NextSampleID(ctx)
	if err != nil {
		return domain.Sample{}, err
	}

	now := s.now()
	reg := req.RegNumber
	if reg == "" {
		reg = DefaultRegNumber(id)
	}
	date := now
	if req.DateReceived != "" {
		d, ok := tabular.ParseDate(req.DateReceived)
		if !ok {
			return domain.Sample{}, fmt.Errorf("date_received %q: %w", req.DateReceived, constants.ErrInvalidRequest)
		}
		date = d
	}
	temp, humidity := defaultTemperatureC, defaultHumidityPct
	if req.TemperatureC != nil {
		temp = *req.TemperatureC
	}
	if req.HumidityPct != nil {
		humidity = *req.HumidityPct
	}

	row := map[string]string{
		"sample_id":     strconv.FormatInt(id, 10),
		"product_id":    strconv.FormatInt(productID, 10),
		"reg_number":    reg,
		"date_received": date.Format(domain.DateLayout),
		"storage_days":  strconv.FormatInt(req.StorageDays, 10),
		"conditions":    fmt.Sprintf("%s°C, %s%%", formatFloat(temp), formatFloat(humidity)),
		"notes":         req.Notes,
	}
	if err = s.store.AppendSample(ctx, row); err != nil {
		return domain.Sample{}, err
	}
	logger.Info(ctx, "sample added", "sample_id", id, "product_id", productID)

	pid, days := productID, req.StorageDays
	d := date
	return domain.Sample{
		ID:           &id,
		ProductID:    &pid,
		RegNumber:    reg,
		DateReceived: &d,
		StorageDays:  &days,
		Conditions:   row["conditions"],
		Notes:        req.Notes,
	}, nil
}

// SaveStageParams appends one measurement per field of the step for a batch of the product.
// A nil sampleID selects the newest batch; missing values take the field default, numeric fields without one get 0.
func (s *Service) SaveStageParams(ctx context.Context, productID int64, step domain.Step, sampleID *int64, values map[string]string) ([]domain.Measurement, error) {
	batches, err := s.ListSamples(ctx, productID)
	if err != nil {
		return nil, err
	}

	var sample *domain.Sample
	for i := range batches {
		if batches[i].ID == nil {
			continue
		}
		if sampleID == nil || *batches[i].ID == *sampleID {
			sample = &batches[i]
			break
		}
	}
	if sample == nil {
		if sampleID == nil {
			return nil, constants.ErrNoSamples
		}
		return nil, fmt.Errorf("sample %d of product %d: %w", *sampleID, productID, constants.ErrSampleNotFound)
	}

	if len(step.Fields) == 0 {
		return []domain.Measurement{}, nil
	}

	base := s.now().Unix()
	rows := make([]map[string]string, 0, len(step.Fields))
	out := make([]domain.Measurement, 0, len(step.Fields))
	for i, f := range step.Fields {
		value, ok := values[f.Key]
		if !ok {
			value = f.Default
			if value == "" && f.Kind == domain.FieldNumeric {
				value = "0"
			}
		}

		id := base + int64(i)
		sid := *sample.ID
		m := domain.Measurement{
			ID:          &id,
			SampleID:    &sid,
			Parameter:   fmt.Sprintf("%s: %s", step.Label, f.Name),
			Unit:        f.Unit,
			ActualValue: value,
			Method:      stageMethod,
		}
		if v, ok := tabular.ParseNumericString(value); ok {
			m.ActualNumeric = &v
		}

		out = append(out, m)
		rows = append(rows, map[string]string{
			"id":           strconv.FormatInt(id, 10),
			"sample_id":    strconv.FormatInt(sid, 10),
			"parameter":    m.Parameter,
			"unit":         m.Unit,
			"actual_value": m.ActualValue,
			"method":       m.Method,
		})
	}

	if err = s.store.AppendMeasurements(ctx, rows); err != nil {
		return nil, err
	}
	logger.Info(ctx, "stage params saved", "step", step.ID, "sample_id", *sample.ID, "count", len(rows))

	return out, nil
}
