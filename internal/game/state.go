package game

import "time"

// Phase is the top-level progression state.
type Phase int

const (
	PhasePlaying   Phase = iota // Simulation runs
	PhaseUpgrade                // Level cleared, shop open
	PhaseOver                   // Out of lives
	PhaseCompleted              // Final level cleared
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseUpgrade:
		return "upgrade"
	case PhaseOver:
		return "over"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Finished reports whether the run has ended.
func (p Phase) Finished() bool {
	return p == PhaseOver || p == PhaseCompleted
}

// UpgradeKind identifies a purchasable player stat.
type UpgradeKind int

const (
	UpgradeJumpForce UpgradeKind = iota
	UpgradeSpeed
)

// String returns the upgrade name.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeJumpForce:
		return "jumpForce"
	case UpgradeSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Upgrade tracks purchases of one stat.
type Upgrade struct {
	Level int // Purchases so far
	Cost  int // Price of the next purchase
}

// State is the progression state of a run.
type State struct {
	Level       int
	Lives       int
	Coins       int
	Combo       int
	LastCollect time.Time
	TimeLeft    int // Seconds
	Phase       Phase
	Upgrades    map[UpgradeKind]*Upgrade
	Paused      bool
	Stars       int // Rating, set on completion
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	clone := s
	clone.Upgrades = make(map[UpgradeKind]*Upgrade, len(s.Upgrades))
	for k, u := range s.Upgrades {
		cp := *u
		clone.Upgrades[k] = &cp
	}
	return clone
}

// UpgradeCost returns the next price of the given upgrade.
func (s State) UpgradeCost(kind UpgradeKind) int {
	if u, ok := s.Upgrades[kind]; ok {
		return u.Cost
	}
	return 0
}
