package process

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepIDs(steps []domain.Step) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func TestDeriveSteps(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "Молоко (козье)",
			source: "козье",
			want:   []string{"intake", "clarification", "normalization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
		{
			name:   "Молоко (коровье)",
			source: "коровье",
			want:   []string{"intake", "clarification", "normalization", "homogenization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
		{
			name:   "Айран",
			source: "коровье",
			want: []string{"intake", "clarification", "normalization", "homogenization", "pasteurization",
				"cool_to_inoculation", "inoculation", "fermentation", "salting", "dilution", "maturation", "packaging"},
		},
		{
			name:   "Айран",
			source: "козье",
			want: []string{"intake", "clarification", "normalization", "homogenization", "pasteurization",
				"cool_to_inoculation", "inoculation", "fermentation", "salting", "dilution", "maturation", "packaging"},
		},
		{
			name:   "Сары ірімшік (козье)",
			source: "козье",
			want: []string{"intake", "clarification", "normalization", "pasteurization",
				"preparation", "coagulation", "curd_processing", "forming", "pressing", "salting_drying", "ripening", "packaging"},
		},
		{
			name:   "Сары ірімшік (коровье)",
			source: "коровье",
			want: []string{"intake", "clarification", "normalization", "homogenization", "pasteurization",
				"preparation", "coagulation", "curd_processing", "forming", "pressing", "salting_drying", "ripening", "packaging"},
		},
		{
			name:   "Кефир",
			source: "",
			want:   []string{"intake", "clarification", "normalization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
		{
			name:   "Продукт 9",
			source: "коровье",
			want:   []string{"intake", "clarification", "normalization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
		{
			name:   "",
			source: "-",
			want:   []string{"intake", "clarification", "normalization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
		{
			name:   "Goat milk",
			source: "farm",
			want:   []string{"intake", "clarification", "normalization", "pasteurization", "cooling", "sterilization", "packaging"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.source, func(t *testing.T) {
			got := DeriveSteps(tt.name, tt.source, nil)
			if diff := cmp.Diff(tt.want, stepIDs(got)); diff != "" {
				t.Errorf("DeriveSteps() mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, "intake", got[0].ID)
			pasteurization := 0
			for _, s := range got {
				if s.ID == StepPasteurization {
					pasteurization++
				}
			}
			assert.Equal(t, 1, pasteurization)
		})
	}
}

func TestDeriveStepsDeterministic(t *testing.T) {
	a := DeriveSteps("Айран", "коровье", nil)
	b := DeriveSteps("  АЙРАН ", "КОРОВЬЕ", nil)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("DeriveSteps() not deterministic (-a +b):\n%s", diff)
	}

	// изменения результата не протекают в статические таблицы
	a[1].Fields[0].Default = "changed"
	a[1].Norm.Unit = "K"
	c := DeriveSteps("Айран", "коровье", nil)
	assert.Equal(t, "5.0", c[1].Fields[0].Default)
	assert.Equal(t, "°C", c[1].Norm.Unit)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name, source string
		want         domain.Classification
	}{
		{"Айран", "коровье", domain.Classification{Archetype: domain.ArchetypeFermented, Matched: true}},
		{"Сыр (ешкі)", "", domain.Classification{Archetype: domain.ArchetypeCheese, Matched: true, Goat: true}},
		{"Молоко", "КОЗЬЕ", domain.Classification{Archetype: domain.ArchetypeMilk, Matched: true, Goat: true}},
		{"Козий сыр", "", domain.Classification{Archetype: domain.ArchetypeCheese, Matched: true, Goat: true}},
		{"Milk", "cow and goat blend", domain.Classification{Archetype: domain.ArchetypeMilk, Matched: true, Goat: true}},
		{"Кефир", "козье", domain.Classification{Archetype: domain.ArchetypeMilk, Goat: true}},
		{"", "", domain.Classification{Archetype: domain.ArchetypeMilk}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.name, tt.source), tt.name)
	}
}

func TestStepNorms(t *testing.T) {
	steps := DeriveSteps("Молоко (коровье)", "коровье", nil)
	past := steps[4]
	require.Equal(t, StepPasteurization, past.ID)
	assert.Equal(t, "Пастеризация (65–69 °C)", past.Label)
	assert.Equal(t, 65.0, *past.Norm.Min)
	assert.Equal(t, "Очистка и сортировка (4–6 °C)", steps[1].Label)
	assert.Nil(t, steps[0].Norm)

	lo, hi := 76.0, 78.0
	src := norms.NewStaticRegistry(map[string]domain.Norm{
		norms.Pasteurization: {Min: &lo, Max: &hi, Unit: "°C", Note: "HTST"},
	})
	steps = DeriveSteps("Молоко (коровье)", "коровье", src)
	assert.Equal(t, "Пастеризация (76–78 °C)", steps[4].Label)
	assert.Equal(t, "HTST", steps[4].Norm.Note)
	// охлаждение не переопределено
	assert.Equal(t, "Охлаждение (2–6 °C)", steps[5].Label)
}

func TestStepFields(t *testing.T) {
	steps := DeriveSteps("Айран", "", nil)
	byID := make(map[string]domain.Step)
	for _, s := range steps {
		byID[s.ID] = s
	}

	assert.Equal(t, []string{"t_ferm", "time_ferm"}, fieldKeys(byID[StepFermentation].Fields))
	assert.Equal(t, "1.8", byID[StepSalting].Fields[0].Default)
	assert.Equal(t, domain.FieldChoice, byID[StepClarification].Fields[2].Kind)
	assert.Empty(t, byID[StepMaturation].Fields)
	assert.NotNil(t, byID[StepMaturation].Fields)

	assert.Equal(t, "#20c997", byID[StepCoolToInoculation].Color)
	assert.Equal(t, "#0b4c86", byID[StepMaturation].Color)
}

func fieldKeys(fields []domain.Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func TestServiceStep(t *testing.T) {
	svc := NewProcessService(nil)
	p, _ := domain.FixedProduct(3)

	step, err := svc.Step(p, StepPressing)
	require.NoError(t, err)
	assert.Equal(t, domain.FieldText, step.Fields[0].Kind)

	_, err = svc.Step(p, StepCooling)
	assert.True(t, errors.Is(err, constants.ErrStepNotFound))

	req := svc.Requirements(p)
	assert.Contains(t, req.Note, "ірімшік")
	assert.NotNil(t, svc.Requirements(domain.FixedCatalog[0]).Table)
}
