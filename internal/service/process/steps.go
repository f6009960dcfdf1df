package process

import (
	"fmt"
	"strconv"

	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
)

const (
	StepIntake            = "intake"
	StepClarification     = "clarification"
	StepNormalization     = "normalization"
	StepHomogenization    = "homogenization"
	StepPasteurization    = "pasteurization"
	StepCooling           = "cooling"
	StepSterilization     = "sterilization"
	StepCoolToInoculation = "cool_to_inoculation"
	StepInoculation       = "inoculation"
	StepFermentation      = "fermentation"
	StepSalting           = "salting"
	StepDilution          = "dilution"
	StepMaturation        = "maturation"
	StepPreparation       = "preparation"
	StepCoagulation       = "coagulation"
	StepCurdProcessing    = "curd_processing"
	StepForming           = "forming"
	StepPressing          = "pressing"
	StepSaltingDrying     = "salting_drying"
	StepRipening          = "ripening"
	StepPackaging         = "packaging"
)

// NormSource supplies externally configured norms by process name.
type NormSource interface {
	Override(key string) (domain.Norm, bool)
}

type stepDef struct {
	id    string
	label string
	icon  string
	desc  string
	// norm is the range bundled with the step
	norm *domain.Norm
	// normKey names the configurable process whose override replaces norm
	normKey string
	// ranged steps get "(min–max unit)" appended to the label
	ranged bool
}

func rng(lo, hi float64, unit, note string) *domain.Norm {
	return &domain.Norm{Min: &lo, Max: &hi, Unit: unit, Note: note}
}

var (
	stepIntake = stepDef{
		id: StepIntake, label: "Приёмка сырья", icon: "📥",
		desc: "Осмотр тары, органолептика, экспресс-анализ состава/обсеменённости.",
	}
	stepClarification = stepDef{
		id: StepClarification, label: "Очистка и сортировка", icon: "🧽",
		desc:   "Фильтрация/сепараторы. Оценка чистоты, кислотности (°Т), определение сорта.",
		norm:   rng(4, 6, "°C", "Охлаждение до 4–6 °C замедляет рост бактерий"),
		ranged: true,
	}
	stepNormalization = stepDef{
		id: StepNormalization, label: "Нормализация состава", icon: "⚖️",
		desc: "Приведение к нормам по жирности/белку/витаминам/минералам.",
	}
	stepHomogenization = stepDef{
		id: StepHomogenization, label: "Гомогенизация", icon: "🌀",
		desc: "Дробление жировых шариков → однородность, отсутствие отстоя.",
	}
	stepPasteurization = stepDef{
		id: StepPasteurization, label: "Пастеризация", icon: "🔥",
		desc:    "Термообработка для снижения микрофлоры.",
		norm:    rng(65, 69, "°C", "Пастеризация согласно рецептуре/ГОСТ"),
		normKey: norms.Pasteurization,
		ranged:  true,
	}
	stepPackaging = stepDef{
		id: StepPackaging, label: "Розлив/упаковка/маркировка", icon: "📦",
		desc: "Готовый продукт.",
	}

	milkTail = []stepDef{
		{
			id: StepCooling, label: "Охлаждение", icon: "❄️",
			desc:    "Быстрое охлаждение после пастеризации.",
			norm:    rng(2, 6, "°C", ""),
			normKey: norms.Cooling,
			ranged:  true,
		},
		{
			id: StepSterilization, label: "Стерилизация / UHT", icon: "🧪",
			desc: "Безопасность и длительный срок хранения.",
		},
		stepPackaging,
	}

	fermentedTail = []stepDef{
		{
			id: StepCoolToInoculation, label: "Охлаждение до заквашивания", icon: "🌡️",
			desc:   "Перед внесением закваски.",
			norm:   rng(35, 45, "°C", ""),
			ranged: true,
		},
		{
			id: StepInoculation, label: "Внесение закваски", icon: "🧫",
			desc: "Культуры: стрептококк, болгарская палочка, дрожжи.",
		},
		{
			id: StepFermentation, label: "Сквашивание", icon: "⏱️",
			desc:    "Выдержка при заданной температуре.",
			norm:    rng(20, 25, "°C", ""),
			normKey: norms.Fermentation,
			ranged:  true,
		},
		{
			id: StepSalting, label: "Добавление соли (1.5–2%)", icon: "🧂",
			desc: "Перемешать до однородности.",
		},
		{
			id: StepDilution, label: "Смешивание с водой / газирование", icon: "💧",
			desc: "Смешивание с кипячёной водой, газирование.",
		},
		{
			id: StepMaturation, label: "Созревание в бутылках (хол.)", icon: "🥶",
			desc: "Холодильное созревание.",
		},
		stepPackaging,
	}

	cheeseTail = []stepDef{
		{id: StepPreparation, label: "Подготовка к выработке", icon: "🧰", desc: "Коррекция состава/кальций/закваски."},
		{id: StepCoagulation, label: "Сычужное свертывание", icon: "🧀", desc: "Внесение фермента → образование сгустка."},
		{id: StepCurdProcessing, label: "Обработка сгустка", icon: "🔪", desc: "Резка/нагрев/перемешивание → выделение сыворотки."},
		{id: StepForming, label: "Формование", icon: "🧱", desc: "Выкладка в формы."},
		{id: StepPressing, label: "Самопрессование/прессование", icon: "🗜️", desc: "Осушка и уплотнение структуры."},
		{id: StepSaltingDrying, label: "Посолка/обсушка", icon: "🧂", desc: "Рассол/сухая посолка; обсушка 2–3 суток (10–12 °C)."},
		{id: StepRipening, label: "Созревание", icon: "⏳", desc: "Камеры с контролем T/влажности."},
		{id: StepPackaging, label: "Упаковка/хранение/реализация", icon: "📦", desc: "Контроль качества и выпуск."},
	}
)

func tailFor(a domain.Archetype) []stepDef {
	switch a {
	case domain.ArchetypeFermented:
		return fermentedTail
	case domain.ArchetypeCheese:
		return cheeseTail
	default:
		return milkTail
	}
}

// DeriveSteps builds the ordered process of a product from its name and source.
// The result depends only on the arguments and the overrides visible through src, which may be nil.
func DeriveSteps(name, source string, src NormSource) []domain.Step {
	c := Classify(name, source)

	defs := []stepDef{stepIntake, stepClarification, stepNormalization}
	if needsHomogenization(c) {
		defs = append(defs, stepHomogenization)
	}
	defs = append(defs, stepPasteurization)
	defs = append(defs, tailFor(c.Archetype)...)

	steps := make([]domain.Step, 0, len(defs))
	for _, d := range defs {
		steps = append(steps, d.build(src))
	}
	return steps
}

func (d stepDef) build(src NormSource) domain.Step {
	n := d.norm
	if d.normKey != "" && src != nil {
		if o, ok := src.Override(d.normKey); ok {
			n = &o
		}
	}
	if n != nil {
		cp := *n
		n = &cp
	}

	label := d.label
	if d.ranged {
		if r := formatRange(n); r != "" {
			label = fmt.Sprintf("%s (%s)", d.label, r)
		}
	}

	return domain.Step{
		ID:          d.id,
		Label:       label,
		Icon:        d.icon,
		Description: d.desc,
		Norm:        n,
		Fields:      FieldsFor(d.id),
		Color:       ColorFor(d.id),
	}
}

// formatRange renders "4–6 °C"; open ranges render only the known bound.
func formatRange(n *domain.Norm) string {
	if n == nil || (n.Min == nil && n.Max == nil) {
		return ""
	}

	var r string
	switch {
	case n.Min != nil && n.Max != nil:
		r = formatNumber(*n.Min) + "–" + formatNumber(*n.Max)
	case n.Min != nil:
		r = "≥ " + formatNumber(*n.Min)
	default:
		r = "≤ " + formatNumber(*n.Max)
	}
	if n.Unit != "" {
		r += " " + n.Unit
	}
	return r
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
