package model

// FraCounter backs the sequential permit-id allocation. One row named
// "fra_patta"; the increment must happen as a single atomic UPDATE.
type FraCounter struct {
	CounterName string `gorm:"column:counter_name;type:varchar(30);primaryKey" json:"counter_name"`
	CounterSeq  int64  `gorm:"column:counter_seq;not null;default:0" json:"counter_seq"`
}

func (FraCounter) TableName() string {
	return "fra_counters"
}

// FraPattaCounterName is the fixed counter key. The calendar year in the
// formatted permit id is cosmetic; the sequence never resets.
const FraPattaCounterName = "fra_patta"
