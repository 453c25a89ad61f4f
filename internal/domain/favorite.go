package domain

import "time"

// Favorite links a user to a recipe. The (user_id, recipe_id) pair is the
// primary key, so favoriting the same recipe twice fails on the key itself.
type Favorite struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RecipeID  int64     `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string { return "favorites" }
