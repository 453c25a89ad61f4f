package domain

// Lookup entities shared across recipes. Deleting one is rejected while any
// recipe still references it.

type Cuisine struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Cuisine) TableName() string { return "cuisines" }

type Ingredient struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }

type Tag struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Tag) TableName() string { return "tags" }

type Diet struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Diet) TableName() string { return "diets" }

type Allergy struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Allergy) TableName() string { return "allergies" }
