package engine

import "fmt"

// BaseXP is awarded for every correct answer before bonuses.
const BaseXP = 10

// ComputeXP returns the experience earned for one answer. streak and combo
// are the values after the answer has been counted.
//
// Streak bonuses are additive. Combo multipliers then apply in turn with
// the result floored after each step, so they compound: a combo of 10
// yields x1.2, x1.5 and x2 together.
func ComputeXP(correct bool, streak, combo int) int {
	if !correct {
		return 0
	}

	xp := BaseXP
	if streak >= 5 {
		xp += 5
	}
	if streak >= 10 {
		xp += 10
	}
	if streak >= 20 {
		xp += 20
	}

	// Integer forms of floor(xp*1.2) and floor(xp*1.5).
	if combo >= 3 {
		xp = xp * 12 / 10
	}
	if combo >= 5 {
		xp = xp * 15 / 10
	}
	if combo >= 10 {
		xp *= 2
	}
	return xp
}

// StreakMessage returns the encouragement line for a streak length, or ""
// below 3.
func StreakMessage(streak int) string {
	switch {
	case streak >= 20:
		return "🔥🔥🔥 LEGENDARY STREAK! 🔥🔥🔥"
	case streak >= 15:
		return "🔥🔥 INCREDIBLE! 🔥🔥"
	case streak >= 10:
		return "🔥 ON FIRE! 🔥"
	case streak >= 5:
		return "🎯 NICE STREAK! 🎯"
	case streak >= 3:
		return "✨ Keep it up! ✨"
	default:
		return ""
	}
}

// ComboMessage returns the combo banner including the literal count, or ""
// below 3.
func ComboMessage(combo int) string {
	switch {
	case combo >= 10:
		return fmt.Sprintf("x%d COMBO!!! 💥", combo)
	case combo >= 5:
		return fmt.Sprintf("x%d COMBO! ⚡", combo)
	case combo >= 3:
		return fmt.Sprintf("x%d combo ✨", combo)
	default:
		return ""
	}
}
