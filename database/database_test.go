package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saadtahsin/portfolio-backend/models"
)

func setupTestDB(t *testing.T) (Database, *gorm.DB) {
	t.Helper()

	// Shared cache keeps the in-memory database visible across pooled
	// connections; the unique name isolates tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return New(db), db
}

func strPtr(s string) *string {
	return &s
}

func TestProjectRepo_AddAndFindByID(t *testing.T) {
	database, _ := setupTestDB(t)

	project := &models.Project{
		Title:        "Portfolio Backend",
		Description:  "REST API for the personal site",
		Technologies: models.StringList{"Go", "PostgreSQL"},
		Category:     "backend",
		GithubURL:    strPtr("https://github.com/example/portfolio"),
		ImageURL:     "https://example.com/portfolio.png",
	}
	require.NoError(t, database.ProjectRepo().Add(project))
	require.NotZero(t, project.ID)

	fetched, err := database.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, project.Title, fetched.Title)
	assert.Equal(t, models.StringList{"Go", "PostgreSQL"}, fetched.Technologies)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestProjectRepo_FindByIDMissing(t *testing.T) {
	database, _ := setupTestDB(t)

	fetched, err := database.ProjectRepo().FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestProjectRepo_Delete(t *testing.T) {
	database, _ := setupTestDB(t)

	project := &models.Project{
		Title:        "Short-lived",
		Description:  "gone soon",
		Technologies: models.StringList{"Go"},
		Category:     "backend",
		ImageURL:     "https://example.com/x.png",
	}
	require.NoError(t, database.ProjectRepo().Add(project))
	require.NoError(t, database.ProjectRepo().Delete(project.ID))

	fetched, err := database.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestSkillCategoryRepo_DeleteCascades(t *testing.T) {
	database, db := setupTestDB(t)

	category := &models.SkillCategory{Name: "Languages", Icon: "code"}
	require.NoError(t, database.SkillCategoryRepo().Add(category))

	other := &models.SkillCategory{Name: "Tools", Icon: "wrench"}
	require.NoError(t, database.SkillCategoryRepo().Add(other))

	skills := []*models.Skill{
		{CategoryID: category.ID, Name: "Go", Level: "Advanced", Percentage: 85},
		{CategoryID: category.ID, Name: "TypeScript", Level: "Intermediate", Percentage: 70},
		{CategoryID: other.ID, Name: "Docker", Level: "Advanced", Percentage: 80},
	}
	for _, skill := range skills {
		require.NoError(t, database.SkillRepo().Add(skill))
	}

	require.NoError(t, database.SkillCategoryRepo().Delete(category.ID))

	fetched, err := database.SkillCategoryRepo().FindByID(category.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	var remaining int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	survivor, err := database.SkillRepo().FindByID(skills[2].ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Equal(t, "Docker", survivor.Name)
}

func TestSkillCategoryRepo_FindAllPreloadsSkills(t *testing.T) {
	database, _ := setupTestDB(t)

	category := &models.SkillCategory{Name: "Backend", Icon: "server"}
	require.NoError(t, database.SkillCategoryRepo().Add(category))
	require.NoError(t, database.SkillRepo().Add(&models.Skill{
		CategoryID: category.ID, Name: "Go", Level: "Expert", Percentage: 90,
	}))

	categories, err := database.SkillCategoryRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Skills, 1)
	assert.Equal(t, "Go", categories[0].Skills[0].Name)
}

func TestExperienceRepo_FindAllOrdersByDisplayOrder(t *testing.T) {
	database, _ := setupTestDB(t)

	first := &models.Experience{Role: "Intern", Duration: "2022", Description: "a", DisplayOrder: 2}
	second := &models.Experience{Role: "Engineer", Duration: "2023", Description: "b", DisplayOrder: 1}
	require.NoError(t, database.ExperienceRepo().Add(first))
	require.NoError(t, database.ExperienceRepo().Add(second))

	experiences, err := database.ExperienceRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, experiences, 2)
	assert.Equal(t, "Engineer", experiences[0].Role)
	assert.Equal(t, "Intern", experiences[1].Role)
}

func TestAboutInfoRepo_FirstEmpty(t *testing.T) {
	database, _ := setupTestDB(t)

	info, err := database.AboutInfoRepo().First()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestAboutInfoRepo_UpdateBumpsUpdatedAt(t *testing.T) {
	database, _ := setupTestDB(t)

	info := &models.AboutInfo{
		Bio:               "bio",
		Passion:           "building things",
		YearsExperience:   "3+",
		ProjectsCompleted: "20+",
		AspirationLabel:   "Software Engineer",
	}
	require.NoError(t, database.AboutInfoRepo().Add(info))

	stored, err := database.AboutInfoRepo().First()
	require.NoError(t, err)
	require.NotNil(t, stored)
	previousUpdate := stored.UpdatedAt

	stored.Bio = "updated bio"
	require.NoError(t, database.AboutInfoRepo().Update(stored))

	refreshed, err := database.AboutInfoRepo().First()
	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.Equal(t, "updated bio", refreshed.Bio)
	assert.True(t, refreshed.UpdatedAt.After(previousUpdate) || refreshed.UpdatedAt.Equal(previousUpdate))
	assert.Equal(t, stored.ID, refreshed.ID)
}

func TestContactMessageRepo_AddAndFindAll(t *testing.T) {
	database, _ := setupTestDB(t)

	message := &models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	}
	require.NoError(t, database.ContactMessageRepo().Add(message))
	require.NotZero(t, message.ID)

	messages, err := database.ContactMessageRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "visitor@example.com", messages[0].Email)
}

func TestSkillRepo_FindByCategory(t *testing.T) {
	database, _ := setupTestDB(t)

	category := &models.SkillCategory{Name: "Frontend", Icon: "layout"}
	require.NoError(t, database.SkillCategoryRepo().Add(category))
	require.NoError(t, database.SkillRepo().Add(&models.Skill{
		CategoryID: category.ID, Name: "React", Level: "Advanced", Percentage: 80,
	}))

	skills, err := database.SkillRepo().FindByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "React", skills[0].Name)
}
