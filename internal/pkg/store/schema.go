package store

import "github.com/ougirez/milkdigit/internal/pkg/tabular"

type Resource string

const (
	ResourceProducts     Resource = "products"
	ResourceSamples      Resource = "samples"
	ResourceMeasurements Resource = "measurements"
	ResourceVitamins     Resource = "vitamins"
	ResourceStorage      Resource = "storage"
)

// Resources is the fixed order of stores in status, exports and snapshots.
var Resources = []Resource{ResourceProducts, ResourceSamples, ResourceMeasurements, ResourceVitamins, ResourceStorage}

var fileNames = map[Resource]string{
	ResourceProducts:     "Products.csv",
	ResourceSamples:      "Samples.csv",
	ResourceMeasurements: "Measurements.csv",
	ResourceVitamins:     "Vitamins_AminoAcids.csv",
	ResourceStorage:      "Storage_Conditions.csv",
}

func (r Resource) FileName() string {
	return fileNames[r]
}

func (r Resource) Valid() bool {
	_, ok := fileNames[r]
	return ok
}

// ResourceByFileName matches a store by its exact file name.
func ResourceByFileName(name string) (Resource, bool) {
	for r, f := range fileNames {
		if f == name {
			return r, true
		}
	}
	return "", false
}

var schemas = map[Resource]tabular.Schema{
	ResourceProducts: {
		{Canonical: "product_id", Aliases: []string{"product_id", "id"}},
		{Canonical: "name", Aliases: []string{"name", "product_name", "title"}},
		{Canonical: "type", Aliases: []string{"type", "category"}},
		{Canonical: "source", Aliases: []string{"source"}},
		{Canonical: "description", Aliases: []string{"description"}},
	},
	ResourceSamples: {
		{Canonical: "sample_id", Aliases: []string{"sample_id", "id"}},
		{Canonical: "product_id", Aliases: []string{"product_id", "product"}},
		{Canonical: "reg_number", Aliases: []string{"reg_number"}},
		{Canonical: "date_received", Aliases: []string{"date_received", "date"}},
		{Canonical: "storage_days", Aliases: []string{"storage_days", "duration_days"}},
		{Canonical: "conditions", Aliases: []string{"conditions"}},
		{Canonical: "notes", Aliases: []string{"notes"}},
	},
	ResourceMeasurements: {
		{Canonical: "id", Aliases: []string{"id"}},
		{Canonical: "sample_id", Aliases: []string{"sample_id", "sample"}},
		{Canonical: "parameter", Aliases: []string{"parameter", "param", "indicator"}},
		{Canonical: "unit", Aliases: []string{"unit"}},
		{Canonical: "actual_value", Aliases: []string{"actual_value", "value", "measurement"}},
		{Canonical: "method", Aliases: []string{"method"}},
	},
	ResourceVitamins: {
		{Canonical: "name", Aliases: []string{"name"}},
		{Canonical: "unit", Aliases: []string{"unit"}},
		{Canonical: "value", Aliases: []string{"value"}},
	},
	ResourceStorage: {
		{Canonical: "sample_id", Aliases: []string{"sample_id"}},
		{Canonical: "temperature_C", Aliases: []string{"temperature_C", "temperature_c", "temp"}},
		{Canonical: "humidity_pct", Aliases: []string{"humidity_pct", "humidity"}},
		{Canonical: "duration_days", Aliases: []string{"duration_days"}},
	},
}

// identifiers are the nullable integer columns of each store
var identifiers = map[Resource][]string{
	ResourceProducts:     {"product_id"},
	ResourceSamples:      {"sample_id", "product_id"},
	ResourceMeasurements: {"sample_id"},
	ResourceStorage:      {"sample_id"},
}

// Columns is the canonical column order writers use.
func (r Resource) Columns() []string {
	return schemas[r].Canonical()
}

// Normalize applies the alias table and identifier coercion of the store.
func (r Resource) Normalize(t *tabular.Table) *tabular.Table {
	out := tabular.NormalizeColumns(t, schemas[r])
	for _, col := range identifiers[r] {
		out = tabular.CoerceIdentifier(out, col)
	}
	return out
}
