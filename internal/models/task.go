package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Completed bool           `gorm:"not null;default:false;index" json:"completed"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
