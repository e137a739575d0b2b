package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codexx-academy/dto"
	"github.com/codexx-academy/models"
)

func TestLoadUnknownTenantReturnsDefaultTemplate(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))

	state, err := svc.Load("ghost")
	require.NoError(t, err)

	assert.Equal(t, "ghost", state.Username)
	assert.Equal(t, "Web Developer & Designer", state.Title)
	assert.Equal(t, models.DefaultTheme, state.Theme())
	assert.Empty(t, state.Projects)
	assert.Empty(t, state.Skills)
}

func TestSaveLoadRoundTripPreservesProjects(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))
	seedWorkspace(t, db, "maya")

	state, err := svc.Load("maya")
	require.NoError(t, err)

	state.Name = "Maya"
	state.About = "I build things for the web."
	state.Skills = []dto.SkillEntry{{Name: "Go", Level: 90}, {Name: "SQL", Level: 70}}
	for _, title := range []string{"Shop", "Blog", "API"} {
		state.Projects = append(state.Projects, dto.ProjectEntry{
			Title:        title,
			ProjectType:  string(models.ProjectTypePortfolio),
			Technologies: []string{"go", "postgres"},
		})
	}
	require.NoError(t, svc.Save("maya", state))

	loaded, err := svc.Load("maya")
	require.NoError(t, err)

	assert.Equal(t, "Maya", loaded.Name)
	assert.Equal(t, "I build things for the web.", loaded.About)
	require.Len(t, loaded.Projects, 3)
	require.Len(t, loaded.Skills, 2)
	assert.Equal(t, 90, loaded.Skills[0].Level)
	for _, p := range loaded.Projects {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "completed", p.Badge)
	}
}

func TestSaveKeepsProjectIDsStable(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))
	seedWorkspace(t, db, "maya")

	state, err := svc.Load("maya")
	require.NoError(t, err)
	state.Projects = []dto.ProjectEntry{{Title: "First", ProjectType: "portfolio"}}
	require.NoError(t, svc.Save("maya", state))

	loaded, err := svc.Load("maya")
	require.NoError(t, err)
	require.Len(t, loaded.Projects, 1)
	originalID := loaded.Projects[0].ID
	require.NotEmpty(t, originalID)

	// An unrelated edit must not change existing project ids.
	loaded.About = "updated"
	require.NoError(t, svc.Save("maya", loaded))

	again, err := svc.Load("maya")
	require.NoError(t, err)
	require.Len(t, again.Projects, 1)
	assert.Equal(t, originalID, again.Projects[0].ID)
}

func TestSaveClearsInactiveVariantFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))
	seedWorkspace(t, db, "maya")

	budget := 500.0
	state, err := svc.Load("maya")
	require.NoError(t, err)
	state.Projects = []dto.ProjectEntry{{
		Title:            "Request job",
		ProjectType:      string(models.ProjectTypeRequest),
		RequestBudgetMin: &budget,
		RequestStatus:    models.RequestStatusOpen,
	}}
	require.NoError(t, svc.Save("maya", state))

	loaded, err := svc.Load("maya")
	require.NoError(t, err)
	require.Len(t, loaded.Projects, 1)

	// Retype the project: request fields must be gone afterwards.
	loaded.Projects[0].ProjectType = string(models.ProjectTypePortfolio)
	require.NoError(t, svc.Save("maya", loaded))

	final, err := svc.Load("maya")
	require.NoError(t, err)
	require.Len(t, final.Projects, 1)
	assert.Nil(t, final.Projects[0].RequestBudgetMin)
	assert.Empty(t, final.Projects[0].RequestStatus)
	assert.Equal(t, "completed", final.Projects[0].Badge)
}

func TestSaveClampsSkillLevels(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))
	seedWorkspace(t, db, "maya")

	state, err := svc.Load("maya")
	require.NoError(t, err)
	state.Skills = []dto.SkillEntry{
		{Name: "Go", Level: 150},
		{Name: "SQL", Level: -5},
		{Name: "JS", Level: 80},
	}
	require.NoError(t, svc.Save("maya", state))

	loaded, err := svc.Load("maya")
	require.NoError(t, err)
	require.Len(t, loaded.Skills, 3)
	assert.Equal(t, 0, loaded.Skills[0].Level)
	assert.Equal(t, 0, loaded.Skills[1].Level)
	assert.Equal(t, 80, loaded.Skills[2].Level)
}

func TestSaveExportsAggregateToDataFile(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	svc := NewPortfolioService(db, store)
	seedWorkspace(t, db, "maya")

	state, err := svc.Load("maya")
	require.NoError(t, err)
	state.Name = "Maya"
	require.NoError(t, svc.Save("maya", state))

	exported, ok, err := store.GetPortfolio("maya")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Maya", exported.Name)
}

func TestSaveFallsBackToDataFileWithoutError(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	svc := NewPortfolioService(db, store)
	seedWorkspace(t, db, "maya")

	state, err := svc.Load("maya")
	require.NoError(t, err)
	state.Name = "Maya"
	state.Skills = []dto.SkillEntry{{Name: "Go", Level: 90}}

	// Break the transaction mid-save; the aggregate must land in the data
	// file and the caller must still see success.
	require.NoError(t, db.Exec("DROP TABLE skills").Error)
	require.NoError(t, svc.Save("maya", state))

	saved, ok, err := store.GetPortfolio("maya")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Maya", saved.Name)
	require.Len(t, saved.Skills, 1)
	assert.Equal(t, 90, saved.Skills[0].Level)
}

func TestSaveCreatesMissingWorkspaceRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewPortfolioService(db, newTestStore(t))

	state := dto.DefaultPortfolioState()
	state.Username = "fresh"
	state.Name = "Fresh Face"
	require.NoError(t, svc.Save("fresh", &state))

	var workspace models.Workspace
	require.NoError(t, db.First(&workspace, "slug = ?", "fresh").Error)
	assert.Equal(t, "Fresh Face", workspace.Name)
	assert.NotEmpty(t, workspace.ID)
}

func TestLoadMigratesLegacyFilePortfolio(t *testing.T) {
	db := newTestDB(t)
	store := newTestStore(t)
	svc := NewPortfolioService(db, store)

	legacy := dto.DefaultPortfolioState()
	legacy.Username = "oldtimer"
	legacy.Name = "Old Timer"
	legacy.Skills = []dto.SkillEntry{{Name: "PHP", Level: 60}}
	require.NoError(t, store.SetPortfolio("oldtimer", legacy))

	// The slug has no workspace yet; loading should pull it from the file.
	state, err := svc.Load("oldtimer")
	require.NoError(t, err)
	assert.Equal(t, "Old Timer", state.Name)
	require.Len(t, state.Skills, 1)

	var workspace models.Workspace
	require.NoError(t, db.First(&workspace, "slug = ?", "oldtimer").Error)
	assert.Equal(t, "Old Timer", workspace.Name)
}
