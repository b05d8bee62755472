package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	AccountID         uint64    `gorm:"uniqueIndex;not null" json:"accountId"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name"`
	CompanySize       string    `gorm:"type:varchar(100);not null" json:"companySize"`
	PreferredLanguage string    `gorm:"type:varchar(100);not null" json:"preferredLanguage"`
	Projects          []Project `gorm:"type:text;serializer:json" json:"projects"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Project lives only inside its parent profile's Projects slice.
type Project struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	Developer string     `json:"developer"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

// AddProject appends project under a freshly generated ID and returns the stored copy.
func (p *Profile) AddProject(project Project) Project {
	project.ID = uuid.NewString()
	p.Projects = append(p.Projects, project)
	return project
}

// FindProject returns a pointer into Projects for in-place edits, or nil.
func (p *Profile) FindProject(id string) *Project {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i]
		}
	}
	return nil
}

// RemoveProject drops the project with the given ID, keeping the order of the rest.
func (p *Profile) RemoveProject(id string) bool {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			p.Projects = append(p.Projects[:i], p.Projects[i+1:]...)
			return true
		}
	}
	return false
}
