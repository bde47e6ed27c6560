// Package maintenance runs scheduled housekeeping around the stores.
package maintenance

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/damataprodutora/portfolio-backend/internal/portfolio"
)

// minOrphanAge protects uploads that were stored but whose save-portfolio call
// has not happened yet. Anything younger than this is left alone.
const minOrphanAge = 24 * time.Hour

// SessionSweeper is implemented by session stores that need explicit pruning.
// TTL-backed stores (Redis) expire keys on their own and are not wired.
type SessionSweeper interface {
	Sweep() int
}

// Sweeper removes uploaded images that no portfolio record references anymore.
// Deleted and re-edited projects leave their old images behind; the nightly
// sweep reclaims them. It also prunes expired sessions when the store keeps
// them in process memory.
type Sweeper struct {
	store     *portfolio.Store
	uploadDir string
	sessions  SessionSweeper // may be nil
}

func NewSweeper(store *portfolio.Store, uploadDir string, sessions SessionSweeper) *Sweeper {
	return &Sweeper{store: store, uploadDir: uploadDir, sessions: sessions}
}

// Start schedules the nightly sweep at midnight.
func (s *Sweeper) Start() {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * *", func() {
		if n := s.SweepSessions(); n > 0 {
			log.Printf("[info] operation=session_sweep removed=%d", n)
		}

		removed, err := s.SweepOnce()
		if err != nil {
			log.Printf("[error] operation=upload_sweep error=%v", err)
			return
		}
		log.Printf("[info] operation=upload_sweep removed=%d", removed)
	})
	if err != nil {
		log.Printf("Failed to create sweep cron job: %v", err)
		return
	}

	log.Println("Upload sweeper started (running nightly at midnight)")
	c.Start()
}

// SweepSessions prunes expired sessions and returns how many were dropped.
func (s *Sweeper) SweepSessions() int {
	if s.sessions == nil {
		return 0
	}
	return s.sessions.Sweep()
}

// SweepOnce removes orphaned upload files older than minOrphanAge and returns
// how many were deleted.
func (s *Sweeper) SweepOnce() (int, error) {
	projects, err := s.store.Load()
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]bool)
	for _, p := range projects {
		for _, u := range p.ImageURLs {
			referenced[filepath.Base(u)] = true
		}
	}

	entries, err := os.ReadDir(s.uploadDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-minOrphanAge)
	removed := 0

	for _, e := range entries {
		if e.IsDir() || referenced[e.Name()] {
			continue
		}

		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.uploadDir, e.Name())); err != nil {
			log.Printf("[warn] operation=upload_sweep file=%s error=%v", e.Name(), err)
			continue
		}
		removed++
	}

	return removed, nil
}
