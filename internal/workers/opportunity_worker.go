package workers

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"talentbridge_backend/internal/logger"
	"talentbridge_backend/internal/repositories"
)

// OpportunityWorker sweeps past-deadline opportunities and flips them
// inactive. Public listings filter on deadline themselves; the sweep just
// keeps provider dashboards honest.
type OpportunityWorker struct {
	opportunityRepo repositories.OpportunityRepository
	schedule        string
	cron            *cron.Cron
}

func NewOpportunityWorker(opportunityRepo repositories.OpportunityRepository, schedule string) *OpportunityWorker {
	return &OpportunityWorker{
		opportunityRepo: opportunityRepo,
		schedule:        schedule,
		cron:            cron.New(),
	}
}

func (w *OpportunityWorker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, w.deactivateExpired)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	w.cron.Start()
	logger.Info("opportunity expiry worker started", "schedule", w.schedule)
	return nil
}

func (w *OpportunityWorker) Stop() {
	w.cron.Stop()
}

func (w *OpportunityWorker) deactivateExpired() {
	affected, err := w.opportunityRepo.DeactivateExpired(time.Now())
	logger.WorkerLog("opportunity_expiry", "deactivate_expired", err)
	if err == nil && affected > 0 {
		logger.Info("expired opportunities deactivated", "count", affected)
	}
}
