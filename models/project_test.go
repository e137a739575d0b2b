package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBadgeForType(t *testing.T) {
	assert.Equal(t, BadgeCompleted, BadgeForType(ProjectTypePortfolio))
	assert.Equal(t, BadgeRequest, BadgeForType(ProjectTypeRequest))
	assert.Equal(t, BadgeServiceResult, BadgeForType(ProjectTypeServiceShowcase))
	assert.Equal(t, BadgeTraining, BadgeForType(ProjectTypeTraining))
	assert.Equal(t, BadgeCompleted, BadgeForType(ProjectType("unknown")))
}

func TestClearVariantFields(t *testing.T) {
	budget := 100.0
	deadline := time.Now()
	project := Project{
		ProjectType:      ProjectTypePortfolio,
		RequestBudgetMin: &budget,
		RequestBudgetMax: &budget,
		RequestDeadline:  &deadline,
		RequestStatus:    RequestStatusOpen,
		ServiceID:        "svc-1",
		SkillRelated:     StringList{"go"},
	}

	project.ClearVariantFields()

	assert.Nil(t, project.RequestBudgetMin)
	assert.Nil(t, project.RequestBudgetMax)
	assert.Nil(t, project.RequestDeadline)
	assert.Empty(t, project.RequestStatus)
	assert.Empty(t, project.ServiceID)
	assert.Nil(t, project.SkillRelated)
}

func TestClearVariantFieldsKeepsActiveVariant(t *testing.T) {
	budget := 100.0
	project := Project{
		ProjectType:      ProjectTypeRequest,
		RequestBudgetMin: &budget,
		RequestStatus:    RequestStatusOpen,
		ServiceID:        "svc-1",
	}

	project.ClearVariantFields()

	assert.NotNil(t, project.RequestBudgetMin)
	assert.Equal(t, RequestStatusOpen, project.RequestStatus)
	assert.Empty(t, project.ServiceID)
}
