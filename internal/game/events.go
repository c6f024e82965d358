package game

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/piggyhop/internal/core"
)

// EventKind identifies something that happened during a step or action.
type EventKind int

const (
	EventLevelLoaded EventKind = iota
	EventCollected
	EventBounced
	EventJumped
	EventLifeLost
	EventTimeUp
	EventLevelCleared
	EventUpgradeBought
	EventGameOver
	EventCompleted
	EventRestarted
	EventPaused
	EventResumed
)

var eventNames = map[EventKind]string{
	EventLevelLoaded:   "level_loaded",
	EventCollected:     "collected",
	EventBounced:       "bounced",
	EventJumped:        "jumped",
	EventLifeLost:      "life_lost",
	EventTimeUp:        "time_up",
	EventLevelCleared:  "level_cleared",
	EventUpgradeBought: "upgrade_bought",
	EventGameOver:      "game_over",
	EventCompleted:     "completed",
	EventRestarted:     "restarted",
	EventPaused:        "paused",
	EventResumed:       "resumed",
}

// String returns the event name used in logs.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single simulation occurrence.
// Value carries the kind-specific payload: coins for collections, the combo
// count, the remaining lives, the upgrade kind or the final score.
type Event struct {
	Kind  EventKind
	Level int
	Value int
}

// HUDField names a display slot.
type HUDField int

const (
	HUDLevel HUDField = iota
	HUDLives
	HUDCoins
	HUDCombo
	HUDTime
	HUDFinalScore
	HUDCurrentCoins
	HUDJumpForceCost
	HUDSpeedCost
	HUDRating
)

var hudNames = [...]string{
	HUDLevel:         "level",
	HUDLives:         "lives",
	HUDCoins:         "coins",
	HUDCombo:         "combo",
	HUDTime:          "time",
	HUDFinalScore:    "finalScore",
	HUDCurrentCoins:  "currentCoins",
	HUDJumpForceCost: "jumpForceCost",
	HUDSpeedCost:     "speedCost",
	HUDRating:        "rating",
}

// HUDFields lists every field in display order.
func HUDFields() []HUDField {
	fields := make([]HUDField, len(hudNames))
	for i := range hudNames {
		fields[i] = HUDField(i)
	}
	return fields
}

// String returns the field name. Browser frontends use it as the element id
// suffix.
func (f HUDField) String() string {
	if int(f) >= 0 && int(f) < len(hudNames) {
		return hudNames[f]
	}
	return "unknown"
}

// HUDUpdate is a single text change for a HUD field.
type HUDUpdate struct {
	Field HUDField
	Value string
}

// StepResult carries everything a frontend needs after a step, timer tick or
// flush.
type StepResult struct {
	Events []Event
	Cues   []core.Cue
	HUD    []HUDUpdate
	Phase  Phase
}

// HUD receives text updates. Implementations must not call back into Game.
type HUD interface {
	SetText(field HUDField, value string)
}

// CuePlayer plays short sound effects.
type CuePlayer interface {
	PlayCue(cue core.Cue)
}

// Dispatch routes a step result to the HUD and audio collaborators.
// Either collaborator may be nil.
func Dispatch(res StepResult, hud HUD, cues CuePlayer) {
	if hud != nil {
		for _, u := range res.HUD {
			hud.SetText(u.Field, u.Value)
		}
	}
	if cues != nil {
		for _, c := range res.Cues {
			cues.PlayCue(c)
		}
	}
}

// HUDMap is a HUD that keeps the latest text of each field.
type HUDMap map[HUDField]string

// SetText implements HUD.
func (m HUDMap) SetText(field HUDField, value string) {
	m[field] = value
}

// Get returns the field text, or fallback when it was never set.
func (m HUDMap) Get(field HUDField, fallback string) string {
	if v, ok := m[field]; ok {
		return v
	}
	return fallback
}

// RatingText renders a star rating such as ★★☆☆☆.
func RatingText(stars, maxStars int) string {
	stars = core.Clamp(stars, 0, maxStars)
	return strings.Repeat("★", stars) + strings.Repeat("☆", maxStars-stars)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
