// internal/models/application.go
package models

import "time"

// Application is a tracked job application.
type Application struct {
	ID               int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	CompanyName      string            `json:"company_name" gorm:"not null" validate:"present"`
	RoleTitle        string            `json:"role_title" gorm:"not null" validate:"present"`
	Status           ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'applied';index" validate:"required"`
	AppliedOn        Date              `json:"applied_on" gorm:"type:date;not null;index"`
	FollowUpOn       *Date             `json:"follow_up_on" gorm:"type:date;index"`
	LastFollowedUpOn *Date             `json:"last_followed_up_on" gorm:"type:date"`
	JobURL           *string           `json:"job_url" validate:"omitempty,http_url"`
	ContactEmail     *string           `json:"contact_email" validate:"omitempty,mailto_email"`
	Salary           *string           `json:"salary"`
	NextAction       *string           `json:"next_action"`
	Notes            *string           `json:"notes" gorm:"type:text"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}

// NewApplication returns an application with creation defaults applied.
func NewApplication() *Application {
	return &Application{Status: ApplicationStatusApplied}
}
