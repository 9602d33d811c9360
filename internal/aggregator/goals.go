package aggregator

// BodyComposition is a muscle mass / body fat pair, used for both
// measurements and targets.
type BodyComposition struct {
	SkeletalMuscleMass float64 `json:"skeletalMuscleMass"`
	PercentBodyFat     float64 `json:"percentBodyFat"`
}

// DefaultGoal applies to owners who never set a goal.
var DefaultGoal = BodyComposition{
	SkeletalMuscleMass: 43,
	PercentBodyFat:     12,
}

// GoalDeltas is goal minus current, per component: a positive muscle delta
// means muscle still to gain, a negative fat delta means fat still to lose.
func GoalDeltas(current, goal BodyComposition) BodyComposition {
	return BodyComposition{
		SkeletalMuscleMass: goal.SkeletalMuscleMass - current.SkeletalMuscleMass,
		PercentBodyFat:     goal.PercentBodyFat - current.PercentBodyFat,
	}
}
