package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"skycast/internal/domain/condition"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/model"
	"skycast/internal/domain/render"
	"skycast/internal/domain/theme"
	"skycast/internal/domain/usecase/locate"
	"skycast/pkg/log"
	"skycast/pkg/msg"
	"skycast/pkg/sched"
)

const (
	// forecastWindowDays is the fixed daily window: today plus the five
	// forecast strip days.
	forecastWindowDays = 6

	// transientErrorTTL is how long the error region stays populated before
	// clearing itself.
	transientErrorTTL = 5 * time.Second
)

// AnimationDriver is the slice of the animation director the session drives.
type AnimationDriver interface {
	Transition(category condition.AnimationCategory)
	ApplyTheme(mode theme.Mode)
}

type sessionUseCase struct {
	mu       sync.Mutex
	resolver locate.Resolver
	forecast api.ForecastGateway
	director AnimationDriver
	runner   sched.Runner
	now      func() time.Time

	state       model.SessionState
	session     *entity.WeatherSession
	unit        entity.UnitPreference
	transient   *model.TransientError
	clearHandle sched.Handle

	// generation orders user actions; a completion whose generation is no
	// longer current is discarded instead of overwriting a newer result.
	generation uint64
}

// NewSessionUseCase creates the session controller. The runner schedules the
// transient-error auto-clear.
func NewSessionUseCase(resolver locate.Resolver, forecast api.ForecastGateway, director AnimationDriver, runner sched.Runner) UseCase {
	return &sessionUseCase{
		resolver: resolver,
		forecast: forecast,
		director: director,
		runner:   runner,
		now:      time.Now,
		state:    model.StateIdle,
		unit:     entity.UnitCelsius,
	}
}

// Search resolves a free-text city query and replaces the session with a
// fresh fetch for the matched place.
func (uc *sessionUseCase) Search(ctx context.Context, query string) (*model.DashboardView, error) {
	gen := uc.beginAction()

	loc, err := uc.resolver.ResolveByName(ctx, query)
	if err != nil {
		return uc.failAction(gen, err)
	}
	return uc.fetchAndDisplay(ctx, gen, *loc)
}

// Locate replaces the session with a fetch for device-provided coordinates.
func (uc *sessionUseCase) Locate(ctx context.Context, coords entity.Coordinates, label string) (*model.DashboardView, error) {
	gen := uc.beginAction()

	loc, err := uc.resolver.ResolveByCoordinates(ctx, coords, label)
	if err != nil {
		return uc.failAction(gen, err)
	}
	return uc.fetchAndDisplay(ctx, gen, *loc)
}

// SetUnit switches the display unit and re-renders the cached session without
// any network call.
func (uc *sessionUseCase) SetUnit(unit entity.UnitPreference) *model.DashboardView {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.unit = unit
	return uc.viewLocked()
}

// View renders the current session state.
func (uc *sessionUseCase) View() *model.DashboardView {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewLocked()
}

// Refresh re-fetches the active session's location in the background. It does
// not touch the state machine: a failed refresh neither surfaces an error nor
// disturbs the displayed session.
func (uc *sessionUseCase) Refresh(ctx context.Context, requestID string) error {
	uc.mu.Lock()
	if uc.session == nil {
		uc.mu.Unlock()
		return nil
	}
	loc := uc.session.Location
	gen := uc.generation
	uc.mu.Unlock()

	resp, err := uc.forecast.RefreshForecast(ctx, loc.Coordinates, forecastWindowDays)
	if err != nil {
		log.Warnf("Background refresh failed for %s: %v", loc.DisplayName, err)
		return fmt.Errorf("background refresh: %w", err)
	}

	sess, err := buildSession(resp, loc, uc.now())
	if err != nil {
		log.Warnf("Background refresh payload rejected for %s: %v", loc.DisplayName, err)
		return err
	}

	uc.mu.Lock()
	if gen != uc.generation || uc.state != model.StateDisplaying {
		uc.mu.Unlock()
		log.Infow("discarding stale background refresh", "request_id", requestID, "location", loc.DisplayName)
		return nil
	}
	uc.session = sess
	mode := uc.themeLocked()
	info := condition.Lookup(condition.Code(sess.Current.ConditionCode))
	uc.mu.Unlock()

	uc.director.Transition(info.Animation)
	uc.director.ApplyTheme(mode)
	log.Infow("session refreshed", "request_id", requestID, "location", loc.DisplayName, "weathercode", sess.Current.ConditionCode)
	return nil
}

// beginAction moves the machine to loading, clears the error region and
// stamps a new generation for the action.
func (uc *sessionUseCase) beginAction() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.generation++
	uc.state = model.StateLoading
	uc.clearTransientLocked()
	return uc.generation
}

// fetchAndDisplay runs the weather fetch for a resolved location and, when
// the action is still current, replaces the session wholesale and drives the
// renderer, animation director and theme evaluation.
func (uc *sessionUseCase) fetchAndDisplay(ctx context.Context, gen uint64, loc entity.ResolvedLocation) (*model.DashboardView, error) {
	resp, err := uc.forecast.GetForecast(ctx, loc.Coordinates, forecastWindowDays)
	if err != nil {
		return uc.failAction(gen, fmt.Errorf("%w: %s", model.ErrTransport, err))
	}

	sess, err := buildSession(resp, loc, uc.now())
	if err != nil {
		return uc.failAction(gen, err)
	}

	uc.mu.Lock()
	if gen != uc.generation {
		view := uc.viewLocked()
		uc.mu.Unlock()
		log.Warnf("Discarding stale completion for %s: a newer action superseded it", loc.DisplayName)
		return view, nil
	}
	uc.session = sess
	uc.state = model.StateDisplaying
	uc.clearTransientLocked()
	mode := uc.themeLocked()
	info := condition.Lookup(condition.Code(sess.Current.ConditionCode))
	view := uc.viewLocked()
	uc.mu.Unlock()

	uc.director.Transition(info.Animation)
	uc.director.ApplyTheme(mode)
	log.Infow("session updated", "location", loc.DisplayName, "weathercode", sess.Current.ConditionCode, "animation", string(info.Animation), "theme", string(mode))
	return view, nil
}

// failAction records a classified failure. A stale failure changes nothing.
// The prior session stays in memory but is not re-rendered: the content panel
// remains hidden behind the error state.
func (uc *sessionUseCase) failAction(gen uint64, err error) (*model.DashboardView, error) {
	kind, key := classify(err)

	uc.mu.Lock()
	if gen != uc.generation {
		view := uc.viewLocked()
		uc.mu.Unlock()
		return view, err
	}
	uc.state = model.StateError
	uc.transient = &model.TransientError{Kind: kind, Message: msg.GetMessage(key)}
	uc.scheduleTransientClearLocked(gen)
	view := uc.viewLocked()
	uc.mu.Unlock()

	log.Warnf("Session action failed (%s): %v", kind, err)
	return view, err
}

// scheduleTransientClearLocked arms the 5s auto-clear of the error region.
func (uc *sessionUseCase) scheduleTransientClearLocked(gen uint64) {
	handle, err := uc.runner.After(transientErrorTTL, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if uc.generation == gen {
			uc.transient = nil
		}
	})
	if err != nil {
		log.Warnf("Failed to schedule error auto-clear: %v", err)
		return
	}
	uc.clearHandle = handle
}

func (uc *sessionUseCase) clearTransientLocked() {
	if uc.clearHandle != nil {
		uc.clearHandle.Cancel()
		uc.clearHandle = nil
	}
	uc.transient = nil
}

func (uc *sessionUseCase) viewLocked() *model.DashboardView {
	return render.Compose(uc.state, uc.session, uc.unit, uc.themeLocked(), uc.transient)
}

// themeLocked keys the theme off today's daylight window, falling back to the
// wall clock before the first successful fetch.
func (uc *sessionUseCase) themeLocked() theme.Mode {
	if uc.session != nil && len(uc.session.Daily) > 0 {
		today := uc.session.Daily[0]
		if !today.Sunrise.IsZero() && !today.Sunset.IsZero() {
			return theme.Evaluate(uc.now(), today.Sunrise, today.Sunset)
		}
	}
	return theme.EvaluateFallback(uc.now())
}

func classify(err error) (kind, messageKey string) {
	switch {
	case errors.Is(err, model.ErrEmptyQuery):
		return "empty-query", "error.empty-query"
	case errors.Is(err, model.ErrNotFound):
		return "not-found", "error.not-found"
	case errors.Is(err, model.ErrInvalidCoordinates):
		return "invalid-coordinates", "error.invalid-coordinates"
	case errors.Is(err, model.ErrInvalidPayload):
		return "invalid-payload", "error.invalid-payload"
	default:
		return "transport", "error.transport"
	}
}
