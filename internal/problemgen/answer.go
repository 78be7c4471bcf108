package problemgen

// CheckAnswer reports whether selected is the answer to p.
func CheckAnswer(selected int, p Problem) bool {
	return selected == p.Answer
}
