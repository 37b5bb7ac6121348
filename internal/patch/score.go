package patch

// Optimization scoring constants. The score is advisory only and never
// blocks plan acceptance.
const (
	scoreStart          = 100
	warningPatchPenalty = 5
	patchCountBudget    = 20
	patchCountPenalty   = 2
	timeBudgetSeconds   = 7200.0
	timePenaltyPerBlock = 1   // points per block of overrun
	timePenaltyBlock    = 300 // seconds of overrun per point
)

// optimizationScore rates how economical the plan is: full marks minus fixed
// penalties per warning patch and per patch beyond the count budget, and a
// sliding penalty as total time runs past the two-hour budget. Floored at
// zero.
func optimizationScore(plan *Plan) int {
	score := scoreStart

	for i := range plan.Patches {
		if plan.Patches[i].Status == StatusWarning {
			score -= warningPatchPenalty
		}
	}

	if n := len(plan.Patches); n > patchCountBudget {
		score -= patchCountPenalty * (n - patchCountBudget)
	}

	if plan.TotalTime > timeBudgetSeconds {
		over := plan.TotalTime - timeBudgetSeconds
		score -= timePenaltyPerBlock * int(over/timePenaltyBlock)
	}

	if score < 0 {
		score = 0
	}
	return score
}
