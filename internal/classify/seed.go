package classify

// SeedSamples is the embedded labeled set the classifier retrains from when
// no dataset file and no usable artifact exist. Small and illustrative:
// recall questions label easy, explanation questions medium, analysis and
// derivation questions hard.
func SeedSamples() []Sample {
	return []Sample{
		{"What is 2+2?", Easy},
		{"What is the capital of France?", Easy},
		{"Define photosynthesis?", Easy},
		{"Name the largest planet in the solar system?", Easy},
		{"What color is chlorophyll?", Easy},
		{"List the primary colors?", Easy},
		{"What is the chemical symbol for water?", Easy},
		{"Who wrote Romeo and Juliet?", Easy},

		{"Explain evolution?", Medium},
		{"Describe quantum mechanics?", Medium},
		{"What is mitosis?", Medium},
		{"Explain how photosynthesis converts light into energy?", Medium},
		{"Describe the process of cellular respiration?", Medium},
		{"Explain the difference between speed and velocity?", Medium},
		{"Describe how vaccines train the immune system?", Medium},
		{"Explain why the sky appears blue?", Medium},

		{"Analyze the impact of entropy on reversible processes?", Hard},
		{"Derive the quadratic formula from the general equation?", Hard},
		{"Compare and contrast mitosis and meiosis at the molecular level?", Hard},
		{"Evaluate the limitations of classical mechanics at relativistic speeds?", Hard},
		{"Prove that the square root of two is irrational?", Hard},
		{"Analyze how natural selection and genetic drift interact in small populations?", Hard},
		{"Derive the time complexity of quicksort in the worst case?", Hard},
		{"Evaluate the trade-offs between consistency and availability in distributed systems?", Hard},
	}
}
