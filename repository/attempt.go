package repository

import (
	"context"
	"log"
	"time"

	"confgive/database"
	"confgive/dto/model"
)

// InsertGiveAttempt records a new attempt. A nil database is a no-op so the
// payment flow never depends on the audit log being configured.
func InsertGiveAttempt(ctx context.Context, attempt model.GiveAttempt) error {
	db := database.GetDB()
	if db == nil {
		return nil
	}
	return db.WithContext(ctx).Create(&attempt).Error
}

// UpdateGiveAttemptStatus stores the reconciled outcome of an attempt.
func UpdateGiveAttemptStatus(ctx context.Context, id string, status string, failReason string) error {
	db := database.GetDB()
	if db == nil {
		return nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":          status,
		"fail_reason":     failReason,
		"settlement_date": &now,
	}

	err := db.WithContext(ctx).Model(&model.GiveAttempt{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		log.Println("failed to update give attempt:", err)
	}
	return err
}

// ListGiveAttempts returns the most recent attempts for the admin view.
func ListGiveAttempts(ctx context.Context, limit int) ([]model.GiveAttempt, error) {
	db := database.GetDB()
	if db == nil {
		return []model.GiveAttempt{}, nil
	}

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var attempts []model.GiveAttempt
	err := db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&attempts).Error
	return attempts, err
}

// MarkStalePendingAttempts fails attempts stuck in the form state longer
// than maxAge. Used by the sweeper.
func MarkStalePendingAttempts(ctx context.Context, maxAge time.Duration) (int64, error) {
	db := database.GetDB()
	if db == nil {
		return 0, nil
	}

	cutoff := time.Now().Add(-maxAge)
	result := db.WithContext(ctx).Model(&model.GiveAttempt{}).
		Where("status = ? AND created_at < ?", model.GiveStatusForm, cutoff).
		Updates(map[string]interface{}{
			"status":      model.GiveStatusFail,
			"fail_reason": "attempt expired without settlement",
		})
	return result.RowsAffected, result.Error
}
