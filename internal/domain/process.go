package domain

type Archetype string

const (
	ArchetypeFermented Archetype = "fermented"
	ArchetypeCheese    Archetype = "cheese"
	ArchetypeMilk      Archetype = "milk"
)

// Classification of a product. Matched is false when the name hit no archetype token
// and the archetype is the milk fallback.
type Classification struct {
	Archetype Archetype `json:"archetype"`
	Matched   bool      `json:"matched"`
	Goat      bool      `json:"goat"`
}

// Norm is an advisory range, never used to validate recorded values.
type Norm struct {
	Min  *float64 `json:"min,omitempty" yaml:"min"`
	Max  *float64 `json:"max,omitempty" yaml:"max"`
	Unit string   `json:"unit,omitempty" yaml:"unit"`
	Note string   `json:"note,omitempty" yaml:"note"`
}

type FieldKind string

const (
	FieldNumeric FieldKind = "numeric"
	FieldText    FieldKind = "text"
	FieldChoice  FieldKind = "choice"
)

// Field describes one operator-recorded parameter of a step.
type Field struct {
	Name    string    `json:"name"`
	Key     string    `json:"key"`
	Unit    string    `json:"unit,omitempty"`
	Kind    FieldKind `json:"kind"`
	Default string    `json:"default,omitempty"`
	Options []string  `json:"options,omitempty"`
}

type Step struct {
	ID          string  `json:"step_id"`
	Label       string  `json:"label"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Norm        *Norm   `json:"norm,omitempty"`
	Fields      []Field `json:"fields"`
	Color       string  `json:"color"`
}

// Requirements is the advisory raw-milk quality text of a product page.
type Requirements struct {
	Title string      `json:"title"`
	Items []string    `json:"items,omitempty"`
	Note  string      `json:"note,omitempty"`
	Table *GradeTable `json:"grade_table,omitempty"`
}

type GradeTable struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}
