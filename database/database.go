package database

import (
	"github.com/saadtahsin/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	contactMessageRepo  *ContactMessageRepo
	projectRepo         *ProjectRepo
	ecaRepo             *EcaRepo
	skillCategoryRepo   *SkillCategoryRepo
	skillRepo           *SkillRepo
	additionalSkillRepo *AdditionalSkillRepo
	blogRepo            *BlogRepo
	aboutInfoRepo       *AboutInfoRepo
	experienceRepo      *ExperienceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		contactMessageRepo:  NewContactMessageRepo(db),
		projectRepo:         NewProjectRepo(db),
		ecaRepo:             NewEcaRepo(db),
		skillCategoryRepo:   NewSkillCategoryRepo(db),
		skillRepo:           NewSkillRepo(db),
		additionalSkillRepo: NewAdditionalSkillRepo(db),
		blogRepo:            NewBlogRepo(db),
		aboutInfoRepo:       NewAboutInfoRepo(db),
		experienceRepo:      NewExperienceRepo(db),
	}
}

// Migrate creates or updates the content tables to match the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ContactMessage{},
		&models.Project{},
		&models.Eca{},
		&models.SkillCategory{},
		&models.Skill{},
		&models.AdditionalSkill{},
		&models.Blog{},
		&models.AboutInfo{},
		&models.Experience{},
	)
}

// Accessor methods for each repository

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) EcaRepo() *EcaRepo {
	return d.ecaRepo
}

func (d Database) SkillCategoryRepo() *SkillCategoryRepo {
	return d.skillCategoryRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) AdditionalSkillRepo() *AdditionalSkillRepo {
	return d.additionalSkillRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) AboutInfoRepo() *AboutInfoRepo {
	return d.aboutInfoRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}
