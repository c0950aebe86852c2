package game

// QuizQuestion is one multiple-choice question with exactly one correct option
type QuizQuestion struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
}

// quizQuestions is the fixed ordered catalog for a quiz round
var quizQuestions = []QuizQuestion{
	{
		Prompt:        "What is the capital of Brazil?",
		Options:       []string{"São Paulo", "Rio de Janeiro", "Brasília", "Salvador"},
		CorrectAnswer: 2,
	},
	{
		Prompt:        "How many continents are there in the world?",
		Options:       []string{"5", "6", "7", "8"},
		CorrectAnswer: 2,
	},
	{
		Prompt:        "What is the largest planet in the Solar System?",
		Options:       []string{"Earth", "Mars", "Jupiter", "Saturn"},
		CorrectAnswer: 2,
	},
	{
		Prompt:        "How many sides does a triangle have?",
		Options:       []string{"2", "3", "4", "5"},
		CorrectAnswer: 1,
	},
	{
		Prompt:        "What color is the sky on a sunny day?",
		Options:       []string{"Green", "Blue", "Red", "Yellow"},
		CorrectAnswer: 1,
	},
	{
		Prompt:        "How many hours are there in a day?",
		Options:       []string{"12", "24", "48", "60"},
		CorrectAnswer: 1,
	},
	{
		Prompt:        "Which of these animals can fly?",
		Options:       []string{"Dog", "Cat", "Bird", "Fish"},
		CorrectAnswer: 2,
	},
	{
		Prompt:        "Which is the hottest season of the year?",
		Options:       []string{"Spring", "Summer", "Autumn", "Winter"},
		CorrectAnswer: 1,
	},
}
