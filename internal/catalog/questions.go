package catalog

import "brainbolt-service/internal/domain"

// DefaultQuestions is the built-in question bank, tiers 1 through 10. It backs
// the service when no database-backed bank is configured.
func DefaultQuestions() []domain.Question {
	return []domain.Question{
		{ID: "q1", Prompt: "What is 2 + 2?", Difficulty: 1, Choices: []string{"3", "4", "5", "6"}, Answer: "4"},
		{ID: "q2", Prompt: "Capital of France?", Difficulty: 1, Choices: []string{"London", "Paris", "Berlin", "Madrid"}, Answer: "Paris"},
		{ID: "q18", Prompt: "Elements in water?", Difficulty: 1, Choices: []string{"Hydrogen, Oxygen", "Helium, Oxygen", "Hydrogen, Nitrogen", "Carbon, Oxygen"}, Answer: "Hydrogen, Oxygen"},
		{ID: "q21", Prompt: "Color of the sky on a clear day?", Difficulty: 1, Choices: []string{"Red", "Blue", "Green", "Yellow"}, Answer: "Blue"},
		{ID: "q22", Prompt: "How many legs does a spider have?", Difficulty: 1, Choices: []string{"6", "8", "10", "4"}, Answer: "8"},
		{ID: "q3", Prompt: "What is the boiling point of water?", Difficulty: 2, Choices: []string{"90C", "100C", "110C", "120C"}, Answer: "100C"},
		{ID: "q5", Prompt: "What is the square root of 64?", Difficulty: 2, Choices: []string{"6", "7", "8", "9"}, Answer: "8"},
		{ID: "q7", Prompt: "Highest mountain in the world?", Difficulty: 2, Choices: []string{"K2", "Everest", "Kangchenjunga", "Lhotse"}, Answer: "Everest"},
		{ID: "q14", Prompt: "HTTP status code for Not Found?", Difficulty: 2, Choices: []string{"200", "404", "500", "403"}, Answer: "404"},
		{ID: "q23", Prompt: "Which planet is known as the Red Planet?", Difficulty: 2, Choices: []string{"Venus", "Mars", "Jupiter", "Saturn"}, Answer: "Mars"},
		{ID: "q4", Prompt: "Who wrote 'Hamlet'?", Difficulty: 3, Choices: []string{"Charles Dickens", "William Shakespeare", "Mark Twain", "Jane Austen"}, Answer: "William Shakespeare"},
		{ID: "q6", Prompt: "Chemical symbol for Gold?", Difficulty: 3, Choices: []string{"Ag", "Au", "Fe", "Cu"}, Answer: "Au"},
		{ID: "q9", Prompt: "Value of Pi (approx)?", Difficulty: 3, Choices: []string{"3.12", "3.14", "3.16", "3.18"}, Answer: "3.14"},
		{ID: "q12", Prompt: "Who painted the Mona Lisa?", Difficulty: 3, Choices: []string{"Van Gogh", "Da Vinci", "Picasso", "Rembrandt"}, Answer: "Da Vinci"},
		{ID: "q24", Prompt: "What gas do plants absorb?", Difficulty: 3, Choices: []string{"Oxygen", "Carbon Dioxide", "Hydrogen", "Nitrogen"}, Answer: "Carbon Dioxide"},
		{ID: "q8", Prompt: "What is part of the atom with negative charge?", Difficulty: 4, Choices: []string{"Proton", "Neutron", "Electron", "Positron"}, Answer: "Electron"},
		{ID: "q11", Prompt: "Derivate of x^2?", Difficulty: 4, Choices: []string{"x", "2x", "x^2", "2"}, Answer: "2x"},
		{ID: "q13", Prompt: "Binary for 5?", Difficulty: 4, Choices: []string{"100", "101", "110", "111"}, Answer: "101"},
		{ID: "q19", Prompt: "Solve 5! (factorial)?", Difficulty: 4, Choices: []string{"60", "100", "120", "150"}, Answer: "120"},
		{ID: "q25", Prompt: "Capital of Japan?", Difficulty: 4, Choices: []string{"Seoul", "Beijing", "Tokyo", "Bangkok"}, Answer: "Tokyo"},
		{ID: "q10", Prompt: "Speed of light (approx m/s)?", Difficulty: 5, Choices: []string{"3x10^6", "3x10^8", "3x10^10", "3x10^12"}, Answer: "3x10^8"},
		{ID: "q16", Prompt: "Complexity of Binary Search?", Difficulty: 5, Choices: []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"}, Answer: "O(log n)"},
		{ID: "q17", Prompt: "Capital of Australia?", Difficulty: 5, Choices: []string{"Sydney", "Melbourne", "Canberra", "Brisbane"}, Answer: "Canberra"},
		{ID: "q26", Prompt: "Powerhouse of the cell?", Difficulty: 5, Choices: []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi"}, Answer: "Mitochondria"},
		{ID: "q27", Prompt: "Number of continents?", Difficulty: 5, Choices: []string{"5", "6", "7", "8"}, Answer: "7"},
		{ID: "q15", Prompt: "Layer 4 of OSI Model?", Difficulty: 6, Choices: []string{"Network", "Transport", "Session", "Presentation"}, Answer: "Transport"},
		{ID: "q28", Prompt: "Integral of 2x?", Difficulty: 6, Choices: []string{"x^2", "2x^2", "x", "2"}, Answer: "x^2"},
		{ID: "q29", Prompt: "First man on the moon?", Difficulty: 6, Choices: []string{"Yuri Gagarin", "Buzz Aldrin", "Neil Armstrong", "Michael Collins"}, Answer: "Neil Armstrong"},
		{ID: "q30", Prompt: "Largest ocean?", Difficulty: 6, Choices: []string{"Atlantic", "Indian", "Arctic", "Pacific"}, Answer: "Pacific"},
		{ID: "q42", Prompt: "What is the capital of Egypt?", Difficulty: 6, Choices: []string{"Cairo", "Alexandra", "Giza", "Luxor"}, Answer: "Cairo"},
		{ID: "q43", Prompt: "Who proposed the Theory of Relativity?", Difficulty: 6, Choices: []string{"Newton", "Einstein", "Galileo", "Bohr"}, Answer: "Einstein"},
		{ID: "q31", Prompt: "Hardest natural substance?", Difficulty: 7, Choices: []string{"Gold", "Iron", "Diamond", "Platinum"}, Answer: "Diamond"},
		{ID: "q32", Prompt: "Who discovered Penicillin?", Difficulty: 7, Choices: []string{"Pasteur", "Fleming", "Curie", "Darwin"}, Answer: "Fleming"},
		{ID: "q33", Prompt: "Value of 'e' (approx)?", Difficulty: 7, Choices: []string{"2.17", "2.71", "3.14", "1.41"}, Answer: "2.71"},
		{ID: "q44", Prompt: "How many bones in human body?", Difficulty: 7, Choices: []string{"200", "206", "210", "212"}, Answer: "206"},
		{ID: "q45", Prompt: "Lightest element?", Difficulty: 7, Choices: []string{"Helium", "Hydrogen", "Lithium", "Boron"}, Answer: "Hydrogen"},
		{ID: "q46", Prompt: "Who wrote '1984'?", Difficulty: 7, Choices: []string{"Orwell", "Huxley", "Bradbury", "Steinbeck"}, Answer: "Orwell"},
		{ID: "q47", Prompt: "Capital of Brazil?", Difficulty: 7, Choices: []string{"Rio de Janeiro", "Sao Paulo", "Brasilia", "Salvador"}, Answer: "Brasilia"},
		{ID: "q34", Prompt: "Capital of Canada?", Difficulty: 8, Choices: []string{"Toronto", "Vancouver", "Ottawa", "Montreal"}, Answer: "Ottawa"},
		{ID: "q35", Prompt: "Smallest prime number?", Difficulty: 8, Choices: []string{"0", "1", "2", "3"}, Answer: "2"},
		{ID: "q36", Prompt: "Start of WWI?", Difficulty: 8, Choices: []string{"1912", "1914", "1918", "1939"}, Answer: "1914"},
		{ID: "q48", Prompt: "Square root of 256?", Difficulty: 8, Choices: []string{"12", "14", "16", "18"}, Answer: "16"},
		{ID: "q49", Prompt: "Atomic number of Gold?", Difficulty: 8, Choices: []string{"50", "79", "80", "100"}, Answer: "79"},
		{ID: "q50", Prompt: "Year the Berlin Wall fell?", Difficulty: 8, Choices: []string{"1987", "1989", "1991", "1993"}, Answer: "1989"},
		{ID: "q51", Prompt: "Largest planet in solar system?", Difficulty: 8, Choices: []string{"Saturn", "Jupiter", "Neptune", "Uranus"}, Answer: "Jupiter"},
		{ID: "q52", Prompt: "Who painted 'Starry Night'?", Difficulty: 8, Choices: []string{"Monet", "Van Gogh", "Dali", "Munch"}, Answer: "Van Gogh"},
		{ID: "q37", Prompt: "Process of water to gas?", Difficulty: 9, Choices: []string{"Condensation", "Evaporation", "Sublimation", "Precipitation"}, Answer: "Evaporation"},
		{ID: "q38", Prompt: "Atomic number of Carbon?", Difficulty: 9, Choices: []string{"4", "6", "8", "12"}, Answer: "6"},
		{ID: "q39", Prompt: "Distance to Sun (approx AU)?", Difficulty: 9, Choices: []string{"1", "10", "100", "0.1"}, Answer: "1"},
		{ID: "q53", Prompt: "Chemical symbol for Tungsten?", Difficulty: 9, Choices: []string{"T", "Tu", "W", "Tg"}, Answer: "W"},
		{ID: "q54", Prompt: "What is the 10th prime number?", Difficulty: 9, Choices: []string{"23", "29", "31", "37"}, Answer: "29"},
		{ID: "q55", Prompt: "Capital of Turkey?", Difficulty: 9, Choices: []string{"Istanbul", "Ankara", "Izmir", "Bursa"}, Answer: "Ankara"},
		{ID: "q56", Prompt: "In which year did Titanic sink?", Difficulty: 9, Choices: []string{"1910", "1912", "1914", "1915"}, Answer: "1912"},
		{ID: "q57", Prompt: "How many hearts does an octopus have?", Difficulty: 9, Choices: []string{"1", "2", "3", "4"}, Answer: "3"},
		{ID: "q58", Prompt: "Speed of sound in water (approx)?", Difficulty: 9, Choices: []string{"343 m/s", "1480 m/s", "3000 m/s", "5000 m/s"}, Answer: "1480 m/s"},
		{ID: "q20", Prompt: "Year expected for simple implementation?", Difficulty: 10, Choices: []string{"2024", "2025", "2026", "Infinity"}, Answer: "2026"},
		{ID: "q40", Prompt: "Speed of sound in air (approx)?", Difficulty: 10, Choices: []string{"300 m/s", "343 m/s", "1000 m/s", "3x10^8 m/s"}, Answer: "343 m/s"},
		{ID: "q41", Prompt: "Is P=NP?", Difficulty: 10, Choices: []string{"Yes", "No", "Unproven", "42"}, Answer: "Unproven"},
		{ID: "q59", Prompt: "Planck's Constant (approx)?", Difficulty: 10, Choices: []string{"6.626e-34", "3.14159", "1.602e-19", "9.81"}, Answer: "6.626e-34"},
		{ID: "q60", Prompt: "First Turing Award winner?", Difficulty: 10, Choices: []string{"Alan Perlis", "Maurice Wilkes", "Richard Hamming", "Marvin Minsky"}, Answer: "Alan Perlis"},
		{ID: "q61", Prompt: "Number of keys on standard piano?", Difficulty: 10, Choices: []string{"66", "72", "88", "101"}, Answer: "88"},
		{ID: "q62", Prompt: "Capital of Kazakhstan?", Difficulty: 10, Choices: []string{"Almaty", "Astana", "Tashkent", "Bishkek"}, Answer: "Astana"},
		{ID: "q63", Prompt: "Distance to Moon (approx km)?", Difficulty: 10, Choices: []string{"100,000", "250,000", "384,400", "500,000"}, Answer: "384,400"},
		{ID: "q64", Prompt: "Melting point of Tungsten?", Difficulty: 10, Choices: []string{"1500C", "2000C", "3422C", "5000C"}, Answer: "3422C"},
		{ID: "q65", Prompt: "Who discovered the electron?", Difficulty: 10, Choices: []string{"Rutherford", "Bohr", "Thomson", "Chadwick"}, Answer: "Thomson"},
	}
}
