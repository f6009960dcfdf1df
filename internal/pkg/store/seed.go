package store

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
)

func demoRows(now time.Time) map[Resource][]map[string]string {
	products := make([]map[string]string, 0, len(domain.FixedCatalog))
	for _, p := range domain.FixedCatalog {
		products = append(products, map[string]string{
			"product_id":  strconv.FormatInt(p.ID, 10),
			"name":        p.Name,
			"type":        p.Type,
			"source":      p.Source,
			"description": p.Description,
		})
	}

	return map[Resource][]map[string]string{
		ResourceProducts: products,
		ResourceSamples: {{
			"sample_id": "1", "product_id": "5", "reg_number": "A-001",
			"date_received": now.Format(domain.DateLayout), "storage_days": "0",
			"conditions": "21°C, 64%", "notes": "демо",
		}},
		ResourceMeasurements: {
			{"id": "1", "sample_id": "1", "parameter": "Температура", "unit": "°C", "actual_value": "42", "method": "демо"},
			{"id": "2", "sample_id": "1", "parameter": "pH", "unit": "", "actual_value": "4.3", "method": "демо"},
		},
		ResourceVitamins: {{"name": "VitC", "unit": "мг/100г", "value": "0.90"}},
		ResourceStorage: {{
			"sample_id": "1", "temperature_C": "4", "humidity_pct": "70", "duration_days": "3",
		}},
	}
}

// Seed writes demo rows into every store file that does not exist yet.
func (s *store) Seed(ctx context.Context, now time.Time) ([]Resource, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	defer s.Invalidate()

	demo := demoRows(now)
	var seeded []Resource
	for _, r := range Resources {
		path := s.Path(r)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		data, err := tabular.EncodeRows(r.Columns(), demo[r], true)
		if err != nil {
			return seeded, wrapErr(r, err)
		}
		if err = tabular.WriteFileAtomic(path, data); err != nil {
			return seeded, wrapErr(r, err)
		}

		logger.Infof(ctx, "seeded demo store %s", r.FileName())
		seeded = append(seeded, r)
	}

	return seeded, nil
}
