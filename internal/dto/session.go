package dto

import (
	"time"

	"github.com/GlebRadaev/skillswap/internal/domain"
)

type BookSessionRequestDTO struct {
	TeacherID      string    `json:"teacherId" example:"0b6c2b3e-6d0e-4bd5-9a53-2f1f0f3f6f0a"`
	SkillID        string    `json:"skillId" example:"skill_demo2"`
	SkillName      string    `json:"skillName" example:"Guitar Lessons"`
	ScheduledAt    time.Time `json:"scheduledAt" example:"2024-07-01T15:00:00Z"`
	DurationHours  int       `json:"durationHours" example:"2"`
	CreditsPerHour int64     `json:"creditsPerHour" example:"2"`
	IsOnline       bool      `json:"isOnline"`
	Location       *string   `json:"location,omitempty" example:"Austin, TX"`
}

func (r BookSessionRequestDTO) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		TeacherID:      r.TeacherID,
		SkillID:        r.SkillID,
		SkillName:      r.SkillName,
		ScheduledAt:    r.ScheduledAt,
		DurationHours:  r.DurationHours,
		CreditsPerHour: r.CreditsPerHour,
		IsOnline:       r.IsOnline,
		Location:       r.Location,
	}
}

type SessionDTO struct {
	ID            string    `json:"id"`
	TeacherID     string    `json:"teacherId"`
	StudentID     string    `json:"studentId"`
	SkillID       string    `json:"skillId"`
	SkillName     string    `json:"skillName"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	DurationHours int       `json:"durationHours"`
	CreditCost    int64     `json:"creditCost"`
	IsOnline      bool      `json:"isOnline"`
	Location      *string   `json:"location,omitempty"`
	Status        string    `json:"status" example:"scheduled"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewSession(s *domain.Session) SessionDTO {
	return SessionDTO{
		ID:            s.ID,
		TeacherID:     s.TeacherID,
		StudentID:     s.StudentID,
		SkillID:       s.SkillID,
		SkillName:     s.SkillName,
		ScheduledAt:   s.ScheduledAt,
		DurationHours: s.DurationHours,
		CreditCost:    s.CreditCost,
		IsOnline:      s.IsOnline,
		Location:      s.Location,
		Status:        string(s.Status),
		CreatedAt:     s.CreatedAt,
	}
}
