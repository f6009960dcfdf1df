package process

import "strings"

const defaultStepColor = "#0b4c86"

var stepColors = []struct {
	token string
	color string
}{
	{"pasteurization", "#d9534f"},
	{"cooling", "#0275d8"},
	{"fermentation", "#5cb85c"},
	{"intake", "#5bc0de"},
	{"normalization", "#f0ad4e"},
	{"homogenization", "#6f42c1"},
	{"inoculation", "#20c997"},
	{"coagulation", "#fd7e14"},
	{"pressing", "#6c757d"},
	{"filtration", "#007bff"},
	{"storage", "#17a2b8"},
	{"packaging", "#343a40"},
}

// ColorFor picks the accent of a step card by substring of its id.
func ColorFor(stepID string) string {
	id := strings.ToLower(stepID)
	for _, c := range stepColors {
		if strings.Contains(id, c.token) {
			return c.color
		}
	}
	return defaultStepColor
}

var productColors = map[int64]string{
	1: "linear-gradient(135deg,#667eea 0%,#764ba2 100%)",
	2: "linear-gradient(135deg,#f093fb 0%,#f5576c 100%)",
	3: "linear-gradient(135deg,#4facfe 0%,#00f2fe 100%)",
	4: "linear-gradient(135deg,#43e97b 0%,#38f9d7 100%)",
	5: "linear-gradient(135deg,#fa709a 0%,#fee140 100%)",
}

func ProductColor(id int64) string {
	if c, ok := productColors[id]; ok {
		return c
	}
	return productColors[1]
}
