package quiz

// DefaultQuestions returns the built-in question set. Each call returns a
// fresh slice.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt:       "What is the capital of France?",
			Options:      []string{"Paris", "London", "Berlin"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Which planet is known as the Red Planet?",
			Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What is the largest ocean on Earth?",
			Options:      []string{"Atlantic", "Indian", "Arctic", "Pacific"},
			CorrectIndex: 3,
		},
		{
			Prompt:       "How many legs does a spider have?",
			Options:      []string{"6", "8", "10"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What gas do plants absorb from the atmosphere?",
			Options:      []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "Who painted the Mona Lisa?",
			Options:      []string{"Van Gogh", "Da Vinci", "Picasso", "Monet"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "What is 7 times 8?",
			Options:      []string{"54", "56", "58", "64"},
			CorrectIndex: 1,
		},
	}
}
