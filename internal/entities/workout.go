package entities

import (
	"time"

	"gorm.io/datatypes"
)

// NameMaxLength is the column size of every name field.
const NameMaxLength = 64

// DateLayout is the wire and filter format of exercise dates.
const DateLayout = "2006-01-02"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

type Exercise struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"size:64;not null" json:"name"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
}

func (Exercise) TableName() string {
	return "exercises"
}

type ExerciseRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ExerciseID   uint           `gorm:"not null;index" json:"exercise_id"`
	Weight       int            `gorm:"not null" json:"weight"`
	Rep          int            `gorm:"not null" json:"rep"`
	ExerciseDate datatypes.Date `gorm:"not null;index" json:"exercise_date"`
	Exercise     Exercise       `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"exercise"`
}

func (ExerciseRecord) TableName() string {
	return "exercise_records"
}

// All returns every persisted model in dependency order (parents first).
func All() []any {
	return []any{
		&Category{},
		&Exercise{},
		&ExerciseRecord{},
	}
}

// DateOf truncates t to its calendar date at UTC midnight. Dates are always
// stored normalised so that exact-match filters compare equal values.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string into a normalised date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return DateOf(t), nil
}

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
