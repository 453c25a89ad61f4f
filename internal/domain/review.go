package domain

import (
	"time"

	"tastebook/internal/pkg/patch"
)

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	UserID   int64 `json:"user_id" gorm:"not null;index"`
	RecipeID int64 `json:"recipe_id" gorm:"not null;index"`
}

func (Review) TableName() string { return "reviews" }

type ReviewPatch struct {
	Rating  patch.Field[int]    `json:"rating"`
	Comment patch.Field[string] `json:"comment"`
}
