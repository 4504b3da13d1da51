package worker

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"coldreach/models"
)

// WarmupWorker advances warmup progress for accounts that are warming
// up and resets daily send counters at midnight. It only maintains
// state; actual warmup traffic is handled by the delivery layer.
type WarmupWorker struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewWarmupWorker(db *gorm.DB, logger *log.Logger) *WarmupWorker {
	return &WarmupWorker{
		DB:     db,
		Logger: logger,
	}
}

func (ww *WarmupWorker) Start(ctx context.Context) {
	// Initial delay to let the server start up
	time.Sleep(10 * time.Second)

	ww.Logger.Println("Warmup worker started")

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	resetTimer := time.NewTimer(untilNextMidnight())
	defer resetTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			ww.Logger.Println("Warmup worker shutting down...")
			return
		case <-ticker.C:
			ww.advanceWarmups()
		case <-resetTimer.C:
			ww.resetDailyCounters()
			resetTimer.Reset(untilNextMidnight())
		}
	}
}

func untilNextMidnight() time.Duration {
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return time.Until(nextMidnight)
}

// advanceWarmups recomputes how many days each warming account has been
// in warmup.
func (ww *WarmupWorker) advanceWarmups() {
	var accounts []models.EmailAccount
	if err := ww.DB.Where("is_warming_up = ?", true).Find(&accounts).Error; err != nil {
		ww.Logger.Printf("Error fetching warming accounts: %v", err)
		return
	}

	for _, account := range accounts {
		if account.WarmupStartedAt == nil {
			continue
		}
		days := int(time.Since(*account.WarmupStartedAt).Hours() / 24)
		if days == account.WarmupDays {
			continue
		}
		if err := ww.DB.Model(&account).Update("warmup_days", days).Error; err != nil {
			ww.Logger.Printf("Error updating warmup for account %d: %v", account.ID, err)
		}
	}
}

// resetDailyCounters zeroes every account's sent-today counter
func (ww *WarmupWorker) resetDailyCounters() {
	if err := ww.DB.Model(&models.EmailAccount{}).
		Where("sent_today > 0").
		Update("sent_today", 0).
		Error; err != nil {
		ww.Logger.Printf("Failed to reset account counters: %v", err)
	} else {
		ww.Logger.Println("Successfully reset account daily counters")
	}
}
