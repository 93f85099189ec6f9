package usecase

import (
	"context"

	"github.com/sanirudh17/mission-control/internal/domain"
)

// ShowConfigTemplateInput contains the input for the ShowConfigTemplate use case.
type ShowConfigTemplateInput struct{}

// ShowConfigTemplateOutput contains the output of the ShowConfigTemplate use case.
type ShowConfigTemplateOutput struct {
	Template string // Configuration template content
}

// ShowConfigTemplate returns the commented default configuration.
type ShowConfigTemplate struct {
	// No dependencies needed - the template never reads existing config files
}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate() *ShowConfigTemplate {
	return &ShowConfigTemplate{}
}

// Execute generates and returns a configuration template.
func (uc *ShowConfigTemplate) Execute(_ context.Context, _ ShowConfigTemplateInput) (*ShowConfigTemplateOutput, error) {
	return &ShowConfigTemplateOutput{Template: domain.RenderConfigTemplate()}, nil
}
