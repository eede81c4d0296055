package minigame

import (
	"encoding/json"
	"log/slog"
)

// Phase is the state of one minigame round.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseAiming
	PhaseAssemble
	PhaseFailing
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseAiming:
		return "aiming"
	case PhaseAssemble:
		return "assemble"
	case PhaseFailing:
		return "failing"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Round runs countdown, aiming, then either the assemble animation or the
// fail fall, and ends in results. Every phase is advanced by Update.
type Round struct {
	settings DifficultySettings
	zones    Zones
	aimer    *Aimer

	phase   Phase
	elapsed float64
	result  Result
	scored  bool
}

// NewRound starts a round in the countdown phase.
func NewRound(s DifficultySettings, zones Zones) *Round {
	return &Round{
		settings: s,
		zones:    zones,
		aimer:    NewAimer(s),
		phase:    PhaseCountdown,
	}
}

func (r *Round) Phase() Phase { return r.phase }

func (r *Round) Aimer() *Aimer { return r.aimer }

// Countdown returns the seconds left before aiming starts.
func (r *Round) Countdown() float64 {
	if r.phase != PhaseCountdown {
		return 0
	}
	left := r.settings.CountdownSeconds - r.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Result returns the scored drop and whether scoring has happened.
func (r *Round) Result() (Result, bool) {
	return r.result, r.scored
}

// Update advances the round by dt seconds. It returns the result on the
// frame the round is scored (by a sweep miss), nil otherwise.
func (r *Round) Update(dt float64) *Result {
	switch r.phase {
	case PhaseCountdown:
		r.elapsed += dt
		if r.elapsed >= r.settings.CountdownSeconds {
			r.enter(PhaseAiming)
		}
	case PhaseAiming:
		if r.aimer.Update(dt) {
			res := Result{Grade: GradeFail, Points: r.settings.PointsMiss}
			r.score(res)
			r.enter(PhaseResults)
			return &res
		}
	case PhaseAssemble:
		r.aimer.Update(dt)
		r.elapsed += dt
		if r.elapsed >= r.settings.AssembleSeconds {
			r.enter(PhaseResults)
		}
	case PhaseFailing:
		r.aimer.Update(dt)
		if !r.aimer.Dropping() {
			r.enter(PhaseResults)
		}
	}
	return nil
}

// Drop releases the filter. Outside the aiming phase it does nothing.
func (r *Round) Drop() (Result, bool) {
	if r.phase != PhaseAiming {
		return Result{}, false
	}

	res := Evaluate(r.aimer.Rect(), r.zones, r.settings)
	r.score(res)

	if res.Points <= 0 {
		// DropToVoid supersedes the normal drop tween.
		r.aimer.Drop()
		r.aimer.DropToVoid()
		r.enter(PhaseFailing)
	} else {
		r.aimer.Drop()
		r.enter(PhaseAssemble)
	}
	return res, true
}

func (r *Round) score(res Result) {
	r.result = res
	r.scored = true
	slog.Debug("filter scored", "grade", res.Grade.String(), "points", res.Points)
}

func (r *Round) enter(p Phase) {
	r.phase = p
	r.elapsed = 0
}
