package process

import "github.com/ougirez/milkdigit/internal/domain"

// stepFields lists the recorded parameters per step id, steps missing here have none.
var stepFields = map[string][]domain.Field{
	StepClarification: {
		{Name: "Температура очищения", Key: "t_clean", Unit: "°C", Kind: domain.FieldNumeric, Default: "5.0"},
		{Name: "Кислотность", Key: "acid_T", Unit: "°Т", Kind: domain.FieldNumeric},
		{Name: "Сорт молока", Key: "grade", Kind: domain.FieldChoice, Options: []string{"Высший", "1", "2", "3"}, Default: "Высший"},
	},
	StepPasteurization: {
		{Name: "Фактическая T пастеризации", Key: "t_past", Unit: "°C", Kind: domain.FieldNumeric},
		{Name: "Время выдержки", Key: "time_hold", Unit: "мин", Kind: domain.FieldNumeric},
	},
	StepCoolToInoculation: {
		{Name: "T заквашивания", Key: "t_inoc", Unit: "°C", Kind: domain.FieldNumeric},
	},
	StepInoculation: {
		{Name: "Доза закваски", Key: "dose_culture", Unit: "%", Kind: domain.FieldNumeric},
	},
	StepFermentation: {
		{Name: "T сквашивания", Key: "t_ferm", Unit: "°C", Kind: domain.FieldNumeric},
		{Name: "Время сквашивания", Key: "time_ferm", Unit: "ч", Kind: domain.FieldNumeric},
	},
	StepSalting: {
		{Name: "Соль", Key: "salt_pct", Unit: "%", Kind: domain.FieldNumeric, Default: "1.8"},
	},
	StepDilution: {
		{Name: "Доля воды", Key: "water_pct", Unit: "%", Kind: domain.FieldNumeric},
	},
	StepCooling: {
		{Name: "Температура охлаждения", Key: "t_cool", Unit: "°C", Kind: domain.FieldNumeric},
	},
	StepCoagulation: {
		{Name: "Количество фермента", Key: "rennet_ml", Unit: "мл/100л", Kind: domain.FieldNumeric},
	},
	StepPressing: {
		{Name: "Давление/время", Key: "press_params", Kind: domain.FieldText},
	},
}

// FieldsFor returns a copy of the field descriptors of a step, never nil.
func FieldsFor(stepID string) []domain.Field {
	src := stepFields[stepID]
	out := make([]domain.Field, len(src))
	for i, f := range src {
		if f.Options != nil {
			f.Options = append([]string(nil), f.Options...)
		}
		out[i] = f
	}
	return out
}
