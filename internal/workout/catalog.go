package workout

// Catalog is the exercise data source for the template generator. It is an
// explicit parameter so tests can swap in a fixture.
type Catalog interface {
	Exercises(goal Goal) []Exercise
}

// StaticCatalog is a fixed in-memory catalog keyed by goal. Sets, reps and
// durations are intermediate-level baselines; the generator scales them per
// experience tier.
type StaticCatalog map[Goal][]Exercise

func (c StaticCatalog) Exercises(goal Goal) []Exercise {
	return c[goal]
}

// DefaultCatalog returns the built-in exercise table.
func DefaultCatalog() StaticCatalog {
	catalog := StaticCatalog{
		GoalStrength: {
			{ID: "st1", Name: "Push-ups", Description: "Place your hands shoulder-width apart and lower your body until your chest nearly touches the floor.", Sets: 3, Reps: 10, Equipment: EquipmentNone},
			{ID: "st2", Name: "Bodyweight Squats", Description: "Stand with feet shoulder-width apart, lower your body as if sitting in an invisible chair.", Sets: 3, Reps: 15, Equipment: EquipmentNone},
			{ID: "st3", Name: "Plank", Description: "Hold a push-up position with your body in a straight line from head to heels.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "st4", Name: "Lunges", Description: "Step forward with one leg, lowering your hips until both knees are bent at 90 degrees.", Sets: 3, Reps: 10, Equipment: EquipmentNone},
			{ID: "st5", Name: "Glute Bridges", Description: "Lie on your back with knees bent, lift hips towards the ceiling.", Sets: 3, Reps: 15, Equipment: EquipmentNone},
			{ID: "st6", Name: "Pull-ups", Description: "Hang from a bar with palms facing away, pull your body up until chin is over the bar.", Sets: 4, Reps: 8, Equipment: EquipmentGym},
			{ID: "st7", Name: "Dumbbell Bench Press", Description: "Lie on a bench, holding dumbbells at chest level, press them upward.", Sets: 4, Reps: 10, Equipment: EquipmentDumbbells},
			{ID: "st8", Name: "Barbell Squats", Description: "Place a barbell on your upper back, squat down until thighs are parallel to floor.", Sets: 4, Reps: 12, Equipment: EquipmentGym},
			{ID: "st9", Name: "Deadlifts", Description: "With barbell in front, hinge at hips and bend knees to lower and grab bar, then stand up straight.", Sets: 5, Reps: 5, Equipment: EquipmentGym},
			{ID: "st10", Name: "Power Cleans", Description: "Explosively lift barbell from floor to shoulders in one motion.", Sets: 5, Reps: 3, Equipment: EquipmentGym},
			{ID: "st11", Name: "Kettlebell Swings", Description: "Hinge at the hips and swing the kettlebell to shoulder height with straight arms.", Sets: 4, Reps: 15, Equipment: EquipmentKettlebell},
			{ID: "st12", Name: "Resistance Band Rows", Description: "Anchor the band at chest height and pull the handles towards your ribs.", Sets: 3, Reps: 12, Equipment: EquipmentBands},
		},
		GoalCardio: {
			{ID: "ca1", Name: "Brisk Walking", Description: "Walk at a pace that elevates your heart rate.", DurationSec: 1200, Equipment: EquipmentNone},
			{ID: "ca2", Name: "Stationary Bike", Description: "Cycle at a comfortable pace with low resistance.", DurationSec: 900, Equipment: EquipmentGym},
			{ID: "ca3", Name: "Jogging", Description: "Run at a moderate pace that allows you to maintain conversation.", DurationSec: 1500, Equipment: EquipmentNone},
			{ID: "ca4", Name: "Jump Rope", Description: "Skip rope at a steady pace, alternating foot patterns.", Sets: 3, DurationSec: 180, Equipment: EquipmentNone},
			{ID: "ca5", Name: "HIIT Sprints", Description: "Alternate between 30 seconds of all-out sprinting and 30 seconds of rest.", Sets: 10, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "ca6", Name: "Rowing Machine Intervals", Description: "Row hard for 1 minute, rest for 30 seconds.", Sets: 8, DurationSec: 60, Equipment: EquipmentGym},
		},
		GoalEndurance: {
			{ID: "en1", Name: "Swimming", Description: "Swim using any stroke at a comfortable pace.", DurationSec: 900, Equipment: EquipmentNone},
			{ID: "en2", Name: "Elliptical Trainer", Description: "Use the elliptical at a steady pace with low resistance.", DurationSec: 1200, Equipment: EquipmentGym},
			{ID: "en3", Name: "Distance Running", Description: "Run at a comfortable pace for a longer duration.", DurationSec: 2400, Equipment: EquipmentNone},
			{ID: "en4", Name: "Cycling", Description: "Bike outdoors or use a stationary bike at moderate resistance.", DurationSec: 3000, Equipment: EquipmentGym},
			{ID: "en5", Name: "Marathon Training", Description: "Long-distance running with varying intensities and distances.", DurationSec: 5400, Equipment: EquipmentNone},
			{ID: "en6", Name: "Triathlon Training", Description: "Alternating between swimming, cycling, and running.", DurationSec: 3600, Equipment: EquipmentNone},
		},
		GoalYoga: {
			{ID: "yo1", Name: "Sun Salutation", Description: "A flowing sequence of yoga poses.", Sets: 3, DurationSec: 300, Equipment: EquipmentNone},
			{ID: "yo2", Name: "Child's Pose", Description: "A resting pose that gently stretches the lower back.", DurationSec: 120, Equipment: EquipmentNone},
			{ID: "yo3", Name: "Warrior Sequence", Description: "A series of standing poses that build strength and stability.", Sets: 2, DurationSec: 300, Equipment: EquipmentNone},
			{ID: "yo4", Name: "Crow Pose", Description: "An arm balance where knees rest on the backs of your upper arms.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "yo5", Name: "Handstand", Description: "An inverted pose where the body is balanced on the hands.", Sets: 5, DurationSec: 60, Equipment: EquipmentNone},
			{ID: "yo6", Name: "Ashtanga Primary Series", Description: "A dynamic, flowing practice that synchronizes breath with movement.", DurationSec: 5400, Equipment: EquipmentNone},
		},
		GoalFlexibility: {
			{ID: "fl1", Name: "Hamstring Stretch", Description: "Sit with legs extended and reach for your toes.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "fl2", Name: "Shoulder Stretch", Description: "Bring one arm across your chest and use the other to hold it in place.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "fl3", Name: "Pigeon Pose", Description: "A hip opener that also stretches your glutes.", Sets: 2, DurationSec: 60, Equipment: EquipmentNone},
			{ID: "fl4", Name: "Butterfly Stretch", Description: "Sit with the soles of your feet together and knees dropped to the sides.", Sets: 3, DurationSec: 45, Equipment: EquipmentNone},
			{ID: "fl5", Name: "Full Split", Description: "Extend both legs in opposite directions until they form a straight line.", Sets: 3, DurationSec: 60, Equipment: EquipmentNone},
			{ID: "fl6", Name: "Backbend", Description: "From standing, arch backward until hands touch the floor.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
		},
		GoalBalance: {
			{ID: "ba1", Name: "Single Leg Stand", Description: "Stand on one leg with the other foot raised slightly off the ground.", Sets: 2, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "ba2", Name: "Heel-to-Toe Walk", Description: "Walk in a straight line placing the heel of one foot directly in front of the toes of the other foot.", DurationSec: 60, Equipment: EquipmentNone},
			{ID: "ba3", Name: "Tree Pose", Description: "Stand on one leg with the sole of the other foot placed against the inner thigh.", Sets: 3, DurationSec: 45, Equipment: EquipmentNone},
			{ID: "ba4", Name: "Standing Figure Four", Description: "Balance on one leg while the other is bent with ankle resting on the standing leg's thigh.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
			{ID: "ba5", Name: "Dancer's Pose", Description: "Standing on one leg, grab the other foot behind you and extend it upward while leaning forward.", Sets: 3, DurationSec: 45, Equipment: EquipmentNone},
			{ID: "ba6", Name: "One-Legged King Pigeon Pose", Description: "From pigeon pose, bend the back leg and reach behind to grab the foot.", Sets: 3, DurationSec: 30, Equipment: EquipmentNone},
		},
	}

	for goal, exercises := range catalog {
		for i := range exercises {
			exercises[i].ImageURL = defaultImageForExercise(exercises[i].Name)
		}
		catalog[goal] = exercises
	}

	return catalog
}
