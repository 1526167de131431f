package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/model"
)

// AllocateFraPattaID hands out the next permit id. The increment is a
// single UPDATE ... RETURNING so concurrent creations cannot collide; that
// atomicity is the load-bearing piece of the whole allocator.
func AllocateFraPattaID(db *gorm.DB) (string, error) {
	if err := db.Exec(
		`INSERT INTO fra_counters (counter_name, counter_seq) VALUES (?, 0) ON CONFLICT (counter_name) DO NOTHING`,
		model.FraPattaCounterName,
	).Error; err != nil {
		return "", err
	}

	var seq int64
	if err := db.Raw(
		`UPDATE fra_counters SET counter_seq = counter_seq + 1 WHERE counter_name = ? RETURNING counter_seq`,
		model.FraPattaCounterName,
	).Scan(&seq).Error; err != nil {
		return "", err
	}

	return FormatFraPattaID(time.Now().Year(), seq), nil
}

// FormatFraPattaID renders FRA-<year>-<zero-padded seq>. The sequence is
// shared across years (the year is display-only) and widens past 999.
func FormatFraPattaID(year int, seq int64) string {
	return fmt.Sprintf("FRA-%04d-%03d", year, seq)
}
