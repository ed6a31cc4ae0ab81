package studyplan

import "github.com/studypal/engine/internal/classify"

// templates holds the topic breakdown per subject and difficulty.
var templates = map[string]map[classify.Difficulty][]string{
	"Python Basics": {
		classify.Easy: {
			"Introduction to Python syntax",
			"Variables and data types",
			"Basic operators and expressions",
			"Input and output",
			"Conditional statements",
		},
		classify.Medium: {
			"Functions and scope",
			"Lists, tuples, and dictionaries",
			"Loops and iteration patterns",
			"String methods and formatting",
			"File handling",
			"Error handling with exceptions",
		},
	},
	"AIML Fundamentals": {
		classify.Easy: {
			"What is machine learning",
			"Supervised vs unsupervised learning",
			"Training and test data",
			"Features and labels",
		},
		classify.Medium: {
			"Linear and logistic regression",
			"Overfitting and regularization",
			"Evaluation metrics",
			"Feature engineering basics",
			"Clustering with k-means",
			"Bias and variance trade-off",
		},
	},
	"Mathematics": {
		classify.Easy: {
			"Arithmetic refresher",
			"Fractions and percentages",
			"Basic algebraic expressions",
			"Linear equations",
		},
		classify.Medium: {
			"Quadratic equations",
			"Functions and graphs",
			"Trigonometry basics",
			"Introduction to probability",
			"Sequences and series",
		},
	},
}
