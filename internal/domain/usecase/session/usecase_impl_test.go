package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"skycast/internal/domain/condition"
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
	"skycast/internal/domain/theme"
	"skycast/pkg/sched"
)

type stubResolver struct {
	location *entity.ResolvedLocation
	err      error
}

func (s *stubResolver) ResolveByName(_ context.Context, query string) (*entity.ResolvedLocation, error) {
	if query == "" {
		return nil, model.ErrEmptyQuery
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.location, nil
}

func (s *stubResolver) ResolveByCoordinates(_ context.Context, coords entity.Coordinates, label string) (*entity.ResolvedLocation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ResolvedLocation{Coordinates: coords, DisplayName: label}, nil
}

type stubForecastGateway struct {
	resp    *external.ForecastResponse
	err     error
	calls   int
	onFetch func()
}

func (s *stubForecastGateway) GetForecast(context.Context, entity.Coordinates, int) (*external.ForecastResponse, error) {
	s.calls++
	if s.onFetch != nil {
		fn := s.onFetch
		s.onFetch = nil
		fn()
	}
	return s.resp, s.err
}

func (s *stubForecastGateway) RefreshForecast(ctx context.Context, coords entity.Coordinates, days int) (*external.ForecastResponse, error) {
	return s.GetForecast(ctx, coords, days)
}

func (s *stubForecastGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{}
}

type stubDriver struct {
	transitions []condition.AnimationCategory
	themes      []theme.Mode
}

func (s *stubDriver) Transition(category condition.AnimationCategory) {
	s.transitions = append(s.transitions, category)
}

func (s *stubDriver) ApplyTheme(mode theme.Mode) {
	s.themes = append(s.themes, mode)
}

type fakeHandle struct {
	cancelled bool
}

func (h *fakeHandle) Cancel()      { h.cancelled = true }
func (h *fakeHandle) Active() bool { return !h.cancelled }

// fakeRunner captures scheduled tasks so tests fire them deterministically.
type fakeRunner struct {
	pending []func()
	handles []*fakeHandle
}

func (r *fakeRunner) schedule(task func()) (sched.Handle, error) {
	handle := &fakeHandle{}
	r.handles = append(r.handles, handle)
	r.pending = append(r.pending, func() {
		if !handle.cancelled {
			task()
		}
	})
	return handle, nil
}

func (r *fakeRunner) Every(_ time.Duration, task func()) (sched.Handle, error) {
	return r.schedule(task)
}

func (r *fakeRunner) EveryLimited(_ time.Duration, _ int, task func()) (sched.Handle, error) {
	return r.schedule(task)
}

func (r *fakeRunner) After(_ time.Duration, task func()) (sched.Handle, error) {
	return r.schedule(task)
}

func (r *fakeRunner) Shutdown() error { return nil }

func (r *fakeRunner) fire() {
	pending := r.pending
	r.pending = nil
	for _, task := range pending {
		task()
	}
}

func forecastPayload(weathercode int) *external.ForecastResponse {
	return &external.ForecastResponse{
		Current: &external.CurrentConditionsDTO{
			Temperature2m:       21.6,
			ApparentTemperature: 20.1,
			RelativeHumidity2m:  64,
			Weathercode:         weathercode,
			SurfacePressure:     1013.2,
			Windspeed10m:        14.5,
			Visibility:          24000,
		},
		Daily: external.DailyForecastDTO{
			Time:             []string{"2026-08-31", "2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04", "2026-09-05"},
			Weathercode:      []int{weathercode, 3, 61, 71, 0, 2},
			Temperature2mMax: []float64{24.1, 19.7, 17.2, 11.0, 22.4, 23.0},
			Temperature2mMin: []float64{14.3, 12.9, 10.1, 4.2, 13.7, 15.0},
			Sunrise:          []string{"2026-08-31T06:32", "2026-09-01T06:33", "2026-09-02T06:35", "2026-09-03T06:36", "2026-09-04T06:38", "2026-09-05T06:39"},
			Sunset:           []string{"2026-08-31T19:58", "2026-09-01T19:56", "2026-09-02T19:54", "2026-09-03T19:52", "2026-09-04T19:49", "2026-09-05T19:47"},
		},
	}
}

func lisbon() *entity.ResolvedLocation {
	return &entity.ResolvedLocation{
		Coordinates: entity.Coordinates{Latitude: 38.72, Longitude: -9.14},
		DisplayName: "Lisbon",
		Country:     "Portugal",
	}
}

func newTestUseCase(resolver *stubResolver, gateway *stubForecastGateway) (*sessionUseCase, *stubDriver, *fakeRunner) {
	driver := &stubDriver{}
	runner := &fakeRunner{}
	uc := NewSessionUseCase(resolver, gateway, driver, runner).(*sessionUseCase)
	uc.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return uc, driver, runner
}

func TestSearchSuccessDrivesRainAnimation(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(63)}
	uc, driver, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	view, err := uc.Search(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if view.State != model.StateDisplaying {
		t.Fatalf("state = %q, want %q", view.State, model.StateDisplaying)
	}
	if view.Current == nil || view.Current.Description != "Moderate rain" {
		t.Fatalf("current panel = %+v, want moderate rain", view.Current)
	}
	if len(view.Forecast) != 5 {
		t.Fatalf("forecast cards = %d, want 5", len(view.Forecast))
	}
	if gateway.calls != 1 {
		t.Fatalf("forecast calls = %d, want 1", gateway.calls)
	}
	if len(driver.transitions) != 1 || driver.transitions[0] != condition.AnimationRain {
		t.Fatalf("transitions = %v, want single rain", driver.transitions)
	}
	if len(driver.themes) != 1 || driver.themes[0] != theme.ModeDay {
		t.Fatalf("themes = %v, want single day", driver.themes)
	}
}

func TestSetUnitRerendersWithoutFetch(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(0)}
	uc, _, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	view := uc.SetUnit(entity.UnitFahrenheit)
	if gateway.calls != 1 {
		t.Fatalf("forecast calls after unit toggle = %d, want 1", gateway.calls)
	}
	if view.Current.Temperature != 71 {
		t.Fatalf("temperature = %v, want 71", view.Current.Temperature)
	}
	if view.Current.UnitSymbol != "°F" {
		t.Fatalf("unit symbol = %q, want °F", view.Current.UnitSymbol)
	}
	if view.Forecast[2].TempMax != 52 {
		t.Fatalf("card temp max = %v, want 52", view.Forecast[3].TempMax)
	}
}

func TestEmptyQueryFailsFast(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(0)}
	uc, driver, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	view, err := uc.Search(context.Background(), "")
	if !errors.Is(err, model.ErrEmptyQuery) {
		t.Fatalf("Search() error = %v, want ErrEmptyQuery", err)
	}
	if view.State != model.StateError {
		t.Fatalf("state = %q, want %q", view.State, model.StateError)
	}
	if view.Error == nil || view.Error.Kind != "empty-query" {
		t.Fatalf("error region = %+v, want empty-query", view.Error)
	}
	if gateway.calls != 0 {
		t.Fatalf("forecast calls = %d, want 0", gateway.calls)
	}
	if len(driver.transitions) != 0 {
		t.Fatalf("transitions = %v, want none", driver.transitions)
	}
}

func TestFailedFetchKeepsPriorSession(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(71)}
	resolver := &stubResolver{location: lisbon()}
	uc, _, _ := newTestUseCase(resolver, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	gateway.resp = nil
	gateway.err = errors.New("connection refused")
	view, err := uc.Search(context.Background(), "Porto")
	if !errors.Is(err, model.ErrTransport) {
		t.Fatalf("Search() error = %v, want ErrTransport", err)
	}
	if view.State != model.StateError {
		t.Fatalf("state = %q, want %q", view.State, model.StateError)
	}
	if view.Error == nil || view.Error.Kind != "transport" {
		t.Fatalf("error region = %+v, want transport", view.Error)
	}
	if view.Current != nil {
		t.Fatalf("current panel rendered in error state: %+v", view.Current)
	}
	if uc.session == nil || uc.session.Location.DisplayName != "Lisbon" {
		t.Fatalf("prior session lost: %+v", uc.session)
	}
}

func TestTransientErrorAutoClears(t *testing.T) {
	gateway := &stubForecastGateway{err: errors.New("timeout")}
	uc, _, runner := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err == nil {
		t.Fatal("Search() error = nil, want transport failure")
	}
	if uc.View().Error == nil {
		t.Fatal("error region empty before the clear fired")
	}

	runner.fire()
	if view := uc.View(); view.Error != nil {
		t.Fatalf("error region = %+v after clear, want nil", view.Error)
	}
}

func TestNewActionCancelsPendingErrorClear(t *testing.T) {
	gateway := &stubForecastGateway{err: errors.New("timeout")}
	uc, _, runner := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err == nil {
		t.Fatal("Search() error = nil, want transport failure")
	}

	gateway.err = nil
	gateway.resp = forecastPayload(2)
	if _, err := uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(runner.handles) != 1 || runner.handles[0].Active() {
		t.Fatalf("pending clear not cancelled: %+v", runner.handles)
	}

	runner.fire()
	if view := uc.View(); view.State != model.StateDisplaying {
		t.Fatalf("state = %q after cancelled clear, want displaying", view.State)
	}
}

func TestInvalidCoordinatesClassified(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(0)}
	uc, _, _ := newTestUseCase(&stubResolver{err: model.ErrInvalidCoordinates}, gateway)

	coords := entity.Coordinates{Latitude: 91, Longitude: 0}
	view, err := uc.Locate(context.Background(), coords, "")
	if !errors.Is(err, model.ErrInvalidCoordinates) {
		t.Fatalf("Locate() error = %v, want ErrInvalidCoordinates", err)
	}
	if view.Error == nil || view.Error.Kind != "invalid-coordinates" {
		t.Fatalf("error region = %+v, want invalid-coordinates", view.Error)
	}
	if gateway.calls != 0 {
		t.Fatalf("forecast calls = %d, want 0", gateway.calls)
	}
}

func TestInvalidPayloadClassified(t *testing.T) {
	gateway := &stubForecastGateway{resp: &external.ForecastResponse{}}
	uc, _, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	view, err := uc.Search(context.Background(), "Lisbon")
	if !errors.Is(err, model.ErrInvalidPayload) {
		t.Fatalf("Search() error = %v, want ErrInvalidPayload", err)
	}
	if view.Error == nil || view.Error.Kind != "invalid-payload" {
		t.Fatalf("error region = %+v, want invalid-payload", view.Error)
	}
}

func TestStaleCompletionDiscarded(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(95)}
	uc, driver, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	// The first fetch triggers a second full search mid-flight, so the first
	// completion arrives with a superseded generation.
	gateway.onFetch = func() {
		inner := &stubForecastGateway{resp: forecastPayload(0)}
		uc.forecast = inner
		if _, err := uc.Search(context.Background(), "Madeira"); err != nil {
			t.Fatalf("nested Search() error = %v", err)
		}
	}

	view, err := uc.Search(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if view.Current == nil || view.Current.Description != "Clear sky" {
		t.Fatalf("current panel = %+v, want the newer clear-sky session", view.Current)
	}
	if len(driver.transitions) != 1 || driver.transitions[0] != condition.AnimationClear {
		t.Fatalf("transitions = %v, want only the newer action's clear", driver.transitions)
	}
}

func TestRefreshWithoutSessionIsNoop(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(0)}
	uc, _, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if err := uc.Refresh(context.Background(), "req-1"); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if gateway.calls != 0 {
		t.Fatalf("forecast calls = %d, want 0", gateway.calls)
	}
}

func TestRefreshReplacesSession(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(3)}
	uc, driver, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	gateway.resp = forecastPayload(85)
	if err := uc.Refresh(context.Background(), "req-2"); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	view := uc.View()
	if view.Current.Description != "Slight snow showers" {
		t.Fatalf("current description = %q, want refreshed snow showers", view.Current.Description)
	}
	last := driver.transitions[len(driver.transitions)-1]
	if last != condition.AnimationSnow {
		t.Fatalf("last transition = %q, want snow", last)
	}
}

func TestRefreshFailureLeavesSessionUntouched(t *testing.T) {
	gateway := &stubForecastGateway{resp: forecastPayload(45)}
	uc, _, _ := newTestUseCase(&stubResolver{location: lisbon()}, gateway)

	if _, err := uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	gateway.resp = nil
	gateway.err = errors.New("upstream down")
	if err := uc.Refresh(context.Background(), "req-3"); err == nil {
		t.Fatal("Refresh() error = nil, want failure")
	}

	view := uc.View()
	if view.State != model.StateDisplaying {
		t.Fatalf("state = %q after failed refresh, want displaying", view.State)
	}
	if view.Error != nil {
		t.Fatalf("error region = %+v after failed refresh, want nil", view.Error)
	}
	if view.Current.Description != "Fog" {
		t.Fatalf("current description = %q, want original fog session", view.Current.Description)
	}
}
