package domain

import "github.com/shopspring/decimal"

// GoalMode selects how the target portfolio amount is derived.
type GoalMode string

const (
	// GoalModeNone disables the goal; the projection accumulates for the whole horizon.
	GoalModeNone GoalMode = "none"
	// GoalModeFreedom sizes the goal as the perpetuity principal whose withdrawal
	// at the safe rate funds annual expenses indefinitely.
	GoalModeFreedom GoalMode = "freedom"
	// GoalModePension sizes the goal as the present value of an annuity covering
	// annual expenses until PensionTargetAge.
	GoalModePension GoalMode = "pension"
)

// PensionTargetAge is the fixed retirement age used for pension goal sizing.
const PensionTargetAge = 67

// IsSet reports whether a goal mode actually requests a goal.
func (gm GoalMode) IsSet() bool {
	return gm != "" && gm != GoalModeNone
}

// Goal is the monetary target that flips a projection from accumulation to
// drawdown. A nil *Goal means no goal was requested (or the mode is none).
type Goal struct {
	Mode   GoalMode        `json:"mode" yaml:"mode"`
	Amount decimal.Decimal `json:"amount" yaml:"amount"`
}
