package users

// Display names are cosmetic: they replace the names reqres.in returns and
// are derived from the user id alone, so they are stable across fetches
// without being stored anywhere.
var (
	FirstNames = [...]string{
		"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun",
		"Reyansh", "Ayaan", "Divya", "Neha", "Ananya",
		"Diya", "Saanvi", "Rajesh", "Sunil", "Vikram",
	}
	LastNames = [...]string{
		"Sharma", "Patel", "Singh", "Kumar", "Gupta",
		"Verma", "Joshi", "Rao", "Malhotra", "Reddy",
		"Kapoor", "Agarwal", "Shah", "Mehta", "Chopra",
	}
)

// DisplayName returns the derived first and last name for id:
// FirstNames[id mod 15] and LastNames[(id*2) mod 15]. Negative ids are
// folded into range.
func DisplayName(id int) (first, last string) {
	return FirstNames[index(id, len(FirstNames))], LastNames[index(id*2, len(LastNames))]
}

func index(n, size int) int {
	i := n % size
	if i < 0 {
		i += size
	}
	return i
}
