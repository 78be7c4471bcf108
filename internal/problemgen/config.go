package problemgen

// OptionCount is the number of answer options offered per problem.
const OptionCount = 4

// Config controls the behavior of the Generator.
type Config struct {
	// MaxOptionDraws bounds the random draws made while collecting
	// distractors. Once exhausted, the remaining slots are filled with the
	// smallest unused positive integers.
	MaxOptionDraws int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxOptionDraws: 1000,
	}
}
