package process

import "github.com/ougirez/milkdigit/internal/domain"

var milkRequirements = domain.Requirements{
	Title: "Нормативы качества и безопасности (для молока-сырья)",
	Items: []string{
		"Соматические клетки: 400–1000 тыс/мл (по сорту)",
		"Патогенные микроорганизмы: отсутствуют (в т.ч. сальмонеллы)",
		"КМАФАнМ: 1·10⁵ – 4·10⁶ КОЕ/г (не более 1·10⁶)",
		"Класс по редуктазной пробе: I–II",
		"Кислотность: до 19 °Т",
		"Плотность: ≥ 1027 кг/м³; СОМО ≥ 8,2%; ингибирующие вещества — отсутствуют",
	},
	Table: &domain.GradeTable{
		Header: []string{"Показатель", "Высший сорт", "Первый сорт", "Второй сорт", "Несортовое"},
		Rows: [][]string{
			{"Кислотность, °Т", "16–18", "16–18", "16–20,99", "<15,99 или >21,00"},
			{"Группа чистоты", "I", "I", "II", "III"},
			{"Плотность, кг/м³ (не менее)", "1028,0", "1027,0", "1027,0", "<1026,9"},
			{"Температура замерзания, °C", "не выше −0,520", "не выше −0,520", "не выше −0,520", "выше −0,520"},
		},
	},
}

var fermentedRequirements = domain.Requirements{
	Title: "Нормативы качества и безопасности (для молока-сырья)",
	Note:  "Айран: требования к исходному молоку — как для питьевого молока (см. нормы выше).",
}

var cheeseRequirements = domain.Requirements{
	Title: "Нормативы качества и безопасности (для молока-сырья)",
	Note:  "Сыры (в т.ч. сары ірімшік): исходное молоко по ветеринарным/санитарным требованиям; КМАФАнМ ≤ 1×10⁶ КОЕ/г, патогены — отсутствуют.",
}

// RequirementsFor returns the advisory raw-milk text for an archetype.
func RequirementsFor(a domain.Archetype) domain.Requirements {
	switch a {
	case domain.ArchetypeFermented:
		return fermentedRequirements
	case domain.ArchetypeCheese:
		return cheeseRequirements
	default:
		return milkRequirements
	}
}
