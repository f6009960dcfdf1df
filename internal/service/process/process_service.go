package process

import (
	"fmt"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
)

type Service struct {
	norms NormSource
}

func NewProcessService(norms NormSource) *Service {
	return &Service{norms: norms}
}

func (s *Service) Classify(p domain.Product) domain.Classification {
	return Classify(p.Name, p.Source)
}

func (s *Service) Steps(p domain.Product) []domain.Step {
	return DeriveSteps(p.Name, p.Source, s.norms)
}

func (s *Service) Step(p domain.Product, stepID string) (domain.Step, error) {
	for _, step := range s.Steps(p) {
		if step.ID == stepID {
			return step, nil
		}
	}
	return domain.Step{}, fmt.Errorf("step %q of product %d: %w", stepID, p.ID, constants.ErrStepNotFound)
}

func (s *Service) Requirements(p domain.Product) domain.Requirements {
	return RequirementsFor(Classify(p.Name, p.Source).Archetype)
}
