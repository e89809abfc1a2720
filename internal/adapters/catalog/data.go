package catalog

import "calix/internal/domain"

// progressions is the built-in progression catalog, easiest step first
var progressions = []domain.ProgressionPath{
	{
		ID:          "pull-ups",
		Name:        "Pull-up Progression",
		Category:    "Pull",
		Description: "Master the pull-up from dead hang to muscle-up",
		Steps: []domain.ProgressionStep{
			{
				ID:          "negative-pull-ups",
				Name:        "Negative Pull-ups",
				Description: "Jump to the top position and slowly lower yourself down",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Focus on a slow descent", "Aim for 5-10 second lowering phase"},
			},
			{
				ID:          "assisted-pull-ups",
				Name:        "Assisted Pull-ups",
				Description: "Use resistance bands or assisted machine to help with pull-ups",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Gradually decrease assistance", "Focus on proper form"},
			},
			{
				ID:          "chin-ups",
				Name:        "Chin-ups",
				Description: "Palms facing you, pull yourself up to the bar",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep elbows close to body", "Pull until chin over bar"},
			},
			{
				ID:          "pull-ups",
				Name:        "Pull-ups",
				Description: "Palms facing away, pull yourself up to the bar",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Engage your lats", "Keep shoulders down away from ears"},
			},
			{
				ID:          "weighted-pull-ups",
				Name:        "Weighted Pull-ups",
				Description: "Pull-ups with additional weight",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Start with small weight increments", "Maintain strict form"},
			},
			{
				ID:          "l-sit-pull-ups",
				Name:        "L-Sit Pull-ups",
				Description: "Perform pull-ups while holding an L-sit position",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Keep legs straight and together", "Maintain the L position throughout"},
			},
			{
				ID:          "muscle-up",
				Name:        "Muscle-up",
				Description: "Pull-up transitioning to a dip, ending above the bar",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Explosive pull", "Practice the transition separately"},
			},
		},
	},
	{
		ID:          "push-ups",
		Name:        "Push-up Progression",
		Category:    "Push",
		Description: "Master the push-up from knee to one-arm variations",
		Steps: []domain.ProgressionStep{
			{
				ID:          "wall-push-ups",
				Name:        "Wall Push-ups",
				Description: "Push-ups against a wall",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep body straight", "Step further from wall to increase difficulty"},
			},
			{
				ID:          "incline-push-ups",
				Name:        "Incline Push-ups",
				Description: "Push-ups with hands on an elevated surface",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Lower the incline gradually", "Keep core engaged"},
			},
			{
				ID:          "knee-push-ups",
				Name:        "Knee Push-ups",
				Description: "Push-ups from knees instead of toes",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep hips aligned with shoulders", "Lower chest to ground"},
			},
			{
				ID:          "push-ups",
				Name:        "Push-ups",
				Description: "Standard push-ups from toes",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Keep body in straight line", "Lower until chest nearly touches ground"},
			},
			{
				ID:          "diamond-push-ups",
				Name:        "Diamond Push-ups",
				Description: "Push-ups with hands close together forming a diamond",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Keep elbows close to body", "Focus on tricep engagement"},
			},
			{
				ID:          "decline-push-ups",
				Name:        "Decline Push-ups",
				Description: "Push-ups with feet elevated",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Higher elevation increases difficulty", "Maintain straight body line"},
			},
			{
				ID:          "archer-push-ups",
				Name:        "Archer Push-ups",
				Description: "Push-ups where one arm extends sideways while the other bends",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Fully extend one arm", "Alternate sides"},
			},
			{
				ID:          "one-arm-push-up",
				Name:        "One-arm Push-up",
				Description: "Push-up using only one arm",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Start with feet wide", "Progress from archer push-ups"},
			},
		},
	},
	{
		ID:          "dips",
		Name:        "Dip Progression",
		Category:    "Push",
		Description: "Master dips from bench to rings",
		Steps: []domain.ProgressionStep{
			{
				ID:          "bench-dips",
				Name:        "Bench Dips",
				Description: "Dips performed with hands on a bench and feet on floor",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep shoulders down", "Lower until upper arms are parallel to floor"},
			},
			{
				ID:          "assisted-dips",
				Name:        "Assisted Dips",
				Description: "Dips with assistance from bands or machine",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Decrease assistance gradually", "Focus on full range of motion"},
			},
			{
				ID:          "parallel-bar-dips",
				Name:        "Parallel Bar Dips",
				Description: "Full dips on parallel bars",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Lower until shoulders are below elbows", "Keep slight forward lean"},
			},
			{
				ID:          "weighted-dips",
				Name:        "Weighted Dips",
				Description: "Dips with additional weight",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Add weight gradually", "Maintain proper form"},
			},
			{
				ID:          "ring-dips",
				Name:        "Ring Dips",
				Description: "Dips performed on gymnastics rings",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Stabilize the rings", "Turn rings out at top position"},
			},
			{
				ID:          "korean-dips",
				Name:        "Korean Dips",
				Description: "Starting from support position, lean forward until shoulders are over hands",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Start with small lean", "Keep arms straight"},
			},
		},
	},
	{
		ID:          "squats",
		Name:        "Squat Progression",
		Category:    "Legs",
		Description: "Develop leg strength from basic to advanced squat variations",
		Steps: []domain.ProgressionStep{
			{
				ID:          "assisted-squats",
				Name:        "Assisted Squats",
				Description: "Squats holding onto support",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Focus on depth", "Use less support over time"},
			},
			{
				ID:          "air-squats",
				Name:        "Air Squats",
				Description: "Basic bodyweight squats",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep weight in heels", "Knees track over toes"},
			},
			{
				ID:          "split-squats",
				Name:        "Split Squats",
				Description: "One foot forward, one back, lower into lunge position",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Keep front knee over ankle", "Lower back knee toward ground"},
			},
			{
				ID:          "bulgarian-split-squats",
				Name:        "Bulgarian Split Squats",
				Description: "Split squats with rear foot elevated",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Find stable platform for rear foot", "Keep torso upright"},
			},
			{
				ID:          "shrimp-squats",
				Name:        "Shrimp Squats",
				Description: "Single-leg squat with rear leg bent and held",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Hold non-working leg", "Progress to not holding leg"},
			},
			{
				ID:          "pistol-squats",
				Name:        "Pistol Squats",
				Description: "Single-leg squat with other leg extended",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Start with support", "Keep extended leg straight"},
			},
		},
	},
	{
		ID:          "handstand",
		Name:        "Handstand Progression",
		Category:    "Balance/Push",
		Description: "Work toward a freestanding handstand",
		Steps: []domain.ProgressionStep{
			{
				ID:          "wall-plank",
				Name:        "Wall Plank",
				Description: "Face-down incline plank with feet on wall",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Build up to 60-second hold", "Keep shoulders active"},
			},
			{
				ID:          "pike-push-ups",
				Name:        "Pike Push-ups",
				Description: "Push-ups with hips raised and head pointing toward ground",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Higher pike is harder", "Focus on shoulder strength"},
			},
			{
				ID:          "wall-walks",
				Name:        "Wall Walks",
				Description: "Walk feet up wall from push-up position",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Walk hands closer to wall", "Build shoulder endurance"},
			},
			{
				ID:          "wall-handstand",
				Name:        "Wall Handstand",
				Description: "Handstand with feet resting on wall",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Aim for straight line", "Gentle heel contact with wall"},
			},
			{
				ID:          "handstand-holds",
				Name:        "Freestanding Handstand",
				Description: "Handstand without wall support",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Start with back to wall", "Practice kick-ups separately"},
			},
			{
				ID:          "handstand-push-ups",
				Name:        "Handstand Push-ups",
				Description: "Push-ups while in handstand position",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Start with head-supported push-ups", "Build with negatives"},
			},
		},
	},
	{
		ID:          "front-lever",
		Name:        "Front Lever Progression",
		Category:    "Pull",
		Description: "Develop the strength for a full front lever",
		Steps: []domain.ProgressionStep{
			{
				ID:          "hanging-knee-raises",
				Name:        "Hanging Knee Raises",
				Description: "Hang from bar and raise knees to chest",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Avoid swinging", "Control the movement"},
			},
			{
				ID:          "tuck-front-lever",
				Name:        "Tuck Front Lever",
				Description: "Front lever position with knees tucked to chest",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Keep body horizontal", "Squeeze shoulder blades"},
			},
			{
				ID:          "advanced-tuck-front-lever",
				Name:        "Advanced Tuck Front Lever",
				Description: "Tuck front lever with hips extended",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Keep hips level with shoulders", "Open hip angle"},
			},
			{
				ID:          "one-leg-front-lever",
				Name:        "One-Leg Front Lever",
				Description: "Front lever with one leg extended, one tucked",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Alternate legs", "Maintain body position"},
			},
			{
				ID:          "straddle-front-lever",
				Name:        "Straddle Front Lever",
				Description: "Front lever with legs in straddle position",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Wide straddle is easier", "Keep legs straight"},
			},
			{
				ID:          "full-front-lever",
				Name:        "Full Front Lever",
				Description: "Full front lever with body and legs extended",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Build with holds and negatives", "Squeeze everything"},
			},
		},
	},
	{
		ID:          "planche",
		Name:        "Planche Progression",
		Category:    "Push",
		Description: "Work toward the full planche",
		Steps: []domain.ProgressionStep{
			{
				ID:          "plank",
				Name:        "Plank",
				Description: "Body straight, supported by forearms and toes",
				Difficulty:  domain.DifficultyBeginner,
				Tips:        []string{"Keep body straight", "Engage core"},
			},
			{
				ID:          "pseudo-planche-pushups",
				Name:        "Pseudo Planche Push-ups",
				Description: "Push-ups with hands positioned near hips",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Lean forward", "Fingers point to feet"},
			},
			{
				ID:          "frog-stand",
				Name:        "Frog Stand",
				Description: "Balance on hands with knees resting on elbows",
				Difficulty:  domain.DifficultyIntermediate,
				Tips:        []string{"Look slightly forward", "Keep arms straight"},
			},
			{
				ID:          "tuck-planche",
				Name:        "Tuck Planche",
				Description: "Planche position with knees tucked toward chest",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Lean forward", "Protract shoulders"},
			},
			{
				ID:          "advanced-tuck-planche",
				Name:        "Advanced Tuck Planche",
				Description: "Tuck planche with more open hip angle",
				Difficulty:  domain.DifficultyAdvanced,
				Tips:        []string{"Maintain shoulder position", "Gradually open hips"},
			},
			{
				ID:          "straddle-planche",
				Name:        "Straddle Planche",
				Description: "Planche with legs in straddle position",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Wide straddle is easier", "Keep legs straight"},
			},
			{
				ID:          "full-planche",
				Name:        "Full Planche",
				Description: "Full planche with body and legs extended",
				Difficulty:  domain.DifficultyElite,
				Tips:        []string{"Build with holds and negatives", "Every muscle tight"},
			},
		},
	},
}

// templates is the built-in set of workout templates
var templates = []domain.WorkoutTemplate{
	{
		ID:          "push-day",
		Name:        "Push Day",
		Description: "Focus on pushing movements like push-ups, dips, and handstands",
		Exercises: []domain.TemplateExercise{
			{ID: "1", ExerciseID: "push-ups", Name: "Push-ups", ProgressionID: "push-ups", TargetSets: 3, TargetReps: intPtr(10)},
			{ID: "2", ExerciseID: "dips", Name: "Dips", ProgressionID: "dips", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "3", ExerciseID: "pike-push-ups", Name: "Pike Push-ups", ProgressionID: "handstand", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "4", ExerciseID: "pseudo-planche-pushups", Name: "Pseudo Planche Push-ups", ProgressionID: "planche", TargetSets: 3, TargetReps: intPtr(5)},
		},
	},
	{
		ID:          "pull-day",
		Name:        "Pull Day",
		Description: "Focus on pulling movements like pull-ups and front lever work",
		Exercises: []domain.TemplateExercise{
			{ID: "1", ExerciseID: "pull-ups", Name: "Pull-ups", ProgressionID: "pull-ups", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "2", ExerciseID: "tuck-front-lever", Name: "Tuck Front Lever", ProgressionID: "front-lever", TargetSets: 3, TargetDuration: intPtr(10)},
			{ID: "3", ExerciseID: "hanging-knee-raises", Name: "Hanging Knee Raises", ProgressionID: "front-lever", TargetSets: 3, TargetReps: intPtr(10)},
		},
	},
	{
		ID:          "legs-day",
		Name:        "Legs Day",
		Description: "Focus on lower body calisthenics",
		Exercises: []domain.TemplateExercise{
			{ID: "1", ExerciseID: "air-squats", Name: "Air Squats", ProgressionID: "squats", TargetSets: 3, TargetReps: intPtr(15)},
			{ID: "2", ExerciseID: "bulgarian-split-squats", Name: "Bulgarian Split Squats", ProgressionID: "squats", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "3", ExerciseID: "shrimp-squats", Name: "Shrimp Squats", ProgressionID: "squats", TargetSets: 3, TargetReps: intPtr(5)},
		},
	},
	{
		ID:          "full-body",
		Name:        "Full Body Workout",
		Description: "Complete full body calisthenics routine",
		Exercises: []domain.TemplateExercise{
			{ID: "1", ExerciseID: "pull-ups", Name: "Pull-ups", ProgressionID: "pull-ups", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "2", ExerciseID: "push-ups", Name: "Push-ups", ProgressionID: "push-ups", TargetSets: 3, TargetReps: intPtr(10)},
			{ID: "3", ExerciseID: "dips", Name: "Dips", ProgressionID: "dips", TargetSets: 3, TargetReps: intPtr(8)},
			{ID: "4", ExerciseID: "air-squats", Name: "Air Squats", ProgressionID: "squats", TargetSets: 3, TargetReps: intPtr(15)},
			{ID: "5", ExerciseID: "tuck-front-lever", Name: "Tuck Front Lever", ProgressionID: "front-lever", TargetSets: 3, TargetDuration: intPtr(10)},
		},
	},
}

func intPtr(v int) *int { return &v }
