package schedule

import (
	"context"

	"skycast/internal/domain/usecase/session"
	"skycast/pkg/log"
	"skycast/pkg/resource"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionRefreshScheduler periodically re-fetches the active session so a
// dashboard left open does not go stale.
type SessionRefreshScheduler struct {
	cron    *cron.Cron
	useCase session.UseCase
}

func NewSessionRefreshScheduler(useCase session.UseCase) *SessionRefreshScheduler {
	return &SessionRefreshScheduler{cron: cron.New(), useCase: useCase}
}

// InitSessionRefreshTasks initializes session refresh schedule tasks
func (scheduler *SessionRefreshScheduler) InitSessionRefreshTasks() {
	cronExpression := resource.GetString("app.session.refresh.cron")

	_, err := scheduler.cron.AddFunc(cronExpression, scheduler.RefreshActiveSession)
	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
	log.Infof("Session refresh scheduler started with cron expression: %s", cronExpression)
}

// RefreshActiveSession re-fetches the active session's location. A refresh
// failure is logged and swallowed: the displayed session stays untouched.
func (scheduler *SessionRefreshScheduler) RefreshActiveSession() {
	requestID := uuid.New().String()

	log.Info("Session refresh task triggered", zap.String("request_id", requestID))
	if err := scheduler.useCase.Refresh(context.Background(), requestID); err != nil {
		log.Error("Session refresh task failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}
	log.Info("Session refresh task completed", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (scheduler *SessionRefreshScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
