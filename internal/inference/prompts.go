package inference

import (
	"fmt"
	"strings"
)

type Task string

const (
	TaskFoodCheck   Task = "food_check"
	TaskProtein     Task = "protein"
	TaskVolume      Task = "volume"
	TaskMuscleGroup Task = "muscle_group"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

const (
	volumeTemperature      = 0.1
	muscleGroupTemperature = 0.3
)

const foodCheckSystemPrompt = "You are a nutritionist. Your task is to determine if the given input is a valid food item. " +
	"Respond with 'true' if it's a food, and 'false' if it's not a food. Only respond with 'true' or 'false', nothing else."

const proteinSystemPrompt = "You are a nutritionist specialized in calculating protein content in foods. " +
	"Always return just the number representing grams of protein, without any units or text. " +
	"If given a range, calculate the average. For example, if the protein content is between 22-24g, return 23."

const volumeInstruction = "Calculate the total volume in kilograms based on the exercise details. " +
	"Convert any weights in pounds (lbs or l) to kilograms (kg or k) using the conversion 1 lb = 0.453592 kg. " +
	"For each line, multiply weight × sets × reps. If 'each' is specified, multiply the weight by 2. " +
	"Return your answer in this format: 'Equation: [detailed calculation equation] = [total]kg\nResult: [total]'"

const volumeSystemPrompt = `You are a fitness expert specialized in calculating total volume for exercises. You must show your work by providing the detailed equation and the final result.

Make sure to convert any weights in pounds (lbs or l) to kilograms using the conversion 1 lb = 0.45 kg.

Here are examples of how to calculate volume correctly:

Example 1:
"22k each: 12, 12, 15"
Equation: 22 * 2(each) * 12 + 22 * 2 * 12 + 22 * 2 * 15 = 1716kg
Result: 1716

Example 2:
"- 23k: 15
- 27k: 15, 15
- 14k: 20"
Equation: 23 * 1 * 15 + 27 * 1 * 15 + 27 * 1 * 15 + 14 * 1 * 20 = 1145kg
Result: 1145

For each exercise set, multiply weight × number of sets × reps. If 'each' is specified, multiply the weight by 2 first. Sum all calculations for the total volume.

Always format your answer exactly like the examples above with "Equation:" followed by the calculation and "Result:" followed by just the number.`

const muscleGroupSystemPromptFormat = `You are a fitness expert. Your task is to determine the primary target muscle group for a given exercise.

Choose from ONLY these muscle groups: %s.

Respond with ONLY the name of the muscle group, in lowercase, nothing else. For example, if the exercise is "bench press", respond with "chest".

If you're unsure or the exercise targets multiple muscle groups equally, choose the most commonly associated primary muscle group.`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func foodCheckMessages(food string) []Message {
	return []Message{
		{Role: RoleSystem, Content: foodCheckSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf("Is '%s' a food item?", food)},
	}
}

func proteinMessages(food string, weightGrams float64, instruction string) []Message {
	prompt := fmt.Sprintf("Calculate the protein content in %gg of %s. %s", weightGrams, food, instruction)
	return []Message{
		{Role: RoleSystem, Content: proteinSystemPrompt},
		{Role: RoleUser, Content: strings.TrimSpace(prompt)},
	}
}

// volumeMessages always carries the fixed output format instruction,
// a caller instruction is appended after it.
func volumeMessages(content, instruction string) []Message {
	prompt := content + "\n\n" + volumeInstruction
	if instruction = strings.TrimSpace(instruction); instruction != "" {
		prompt += "\n" + instruction
	}
	return []Message{
		{Role: RoleSystem, Content: volumeSystemPrompt},
		{Role: RoleUser, Content: prompt},
	}
}

func muscleGroupMessages(exerciseName string, vocabulary []string) []Message {
	return []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(muscleGroupSystemPromptFormat, strings.Join(vocabulary, ", "))},
		{Role: RoleUser, Content: fmt.Sprintf("What is the primary target muscle group for %q?", exerciseName)},
	}
}
