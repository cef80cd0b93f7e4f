package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	authRepo "churchhub_backend/internals/features/users/auth/repository"
)

const defaultCleanupSpec = "@every 6h"

// RegisterBlacklistCleanup adds the expired-token purge to c.
// Spec comes from TOKEN_CLEANUP_CRON, standard cron syntax or @every.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB) (cron.EntryID, error) {
	spec := configs.GetEnv("TOKEN_CLEANUP_CRON", defaultCleanupSpec)
	return c.AddFunc(spec, func() { RunBlacklistCleanup(db) })
}

func RunBlacklistCleanup(db *gorm.DB) {
	n, err := authRepo.CleanupExpiredBlacklist(db, time.Now())
	if err != nil {
		log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired tokens removed", n)
	}
}
