package domain

import "time"

type User struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"-"`
	Name        *string   `json:"name"`
	Surname     *string   `json:"surname"`
	Gender      *Gender   `json:"gender" validate:"omitempty,oneof=Male Female"`
	Avatar      *string   `json:"avatar"`
	Height      *float64  `json:"height" validate:"omitempty,gt=0"`
	BirthOfDate *string   `json:"birthOfDate" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
