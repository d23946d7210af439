package workout

import "math/rand"

// goalTips are rotated into the client notification center while a plan is
// active.
var goalTips = map[Goal][]string{
	GoalStrength: {
		"Ensure proper form to prevent injuries and maximize effectiveness.",
		"Progressive overload is key - gradually increase weight or reps over time.",
		"Allow 48 hours of recovery for muscle groups between strength sessions.",
		"Protein intake is crucial for muscle repair and growth.",
		"Compound exercises give you more bang for your buck than isolation exercises.",
	},
	GoalCardio: {
		"Warm up properly before intense cardio sessions.",
		"Mix high and low intensity cardio for optimal heart health.",
		"Stay hydrated during cardio workouts.",
		"Monitor your heart rate to ensure you're in the right zone for your goals.",
		"Consistency is more important than intensity for cardiovascular health.",
	},
	GoalEndurance: {
		"Build endurance gradually to avoid injury.",
		"Proper nutrition before long sessions is crucial for sustained energy.",
		"Cross-training can help improve overall endurance while reducing injury risk.",
		"Recovery is as important as training for endurance development.",
		"Proper breathing techniques can significantly improve endurance performance.",
	},
	GoalYoga: {
		"Focus on your breath - it's the foundation of yoga practice.",
		"Don't compare your practice to others - yoga is a personal journey.",
		"Consistency matters more than duration - daily practice is beneficial.",
		"Props can help make poses more accessible and beneficial.",
		"Balance challenging poses with restorative practices for a complete practice.",
	},
	GoalFlexibility: {
		"Warm up before stretching to increase blood flow to muscles.",
		"Hold static stretches for 30 seconds to 2 minutes for best results.",
		"Breathe deeply while stretching to help muscles relax.",
		"Stretch regularly - ideally daily - for best improvements in flexibility.",
		"Avoid bouncing in stretches as it can cause micro-tears in muscles.",
	},
	GoalBalance: {
		"Practice balance exercises daily for consistent improvement.",
		"A strong core is essential for better balance.",
		"Focus your gaze on a fixed point during balance poses to help stabilize.",
		"Barefoot training can improve proprioception and balance.",
		"Progress gradually from stable to more unstable surfaces as your balance improves.",
	},
}

// RandomTip returns a random tip for the goal, or an empty string for an
// unknown goal.
func RandomTip(goal Goal) string {
	tips := goalTips[goal]
	if len(tips) == 0 {
		return ""
	}
	return tips[rand.Intn(len(tips))]
}
