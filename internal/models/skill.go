package models

import "time"

// Skill is a free-text skill name. Names are trimmed but not deduplicated;
// two rows may carry the same name.
type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSkill links a user to a skill, optionally tied to the experience where
// the skill was exercised.
type UserSkill struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	UserID       uint        `gorm:"not null" json:"user_id"`
	SkillID      uint        `gorm:"not null" json:"skill_id"`
	ExperienceID *uint       `json:"experience_id,omitempty"`
	User         User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill        Skill       `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
	Experience   *Experience `gorm:"foreignKey:ExperienceID" json:"experience,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
