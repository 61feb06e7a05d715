package game

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[word] }

func TestScoreDuplicateLetters(t *testing.T) {
	got := Score("ALLOY", "LOLLY")
	assert.Equal(t, []Clue{Present, Present, Exact, Absent, Exact}, got)
}

func TestScoreExactConsumesBeforePresent(t *testing.T) {
	// The second E is exact, so the first E has nothing left to claim.
	got := Score("CRANE", "EERIE")
	assert.Equal(t, []Clue{Absent, Absent, Present, Absent, Exact}, got)
}

func TestScoreTraceAgainstCrane(t *testing.T) {
	got := Score("CRANE", "TRACE")
	assert.Equal(t, []Clue{Absent, Exact, Exact, Present, Exact}, got)
}

func TestScoreSecretAgainstItselfIsAllExact(t *testing.T) {
	for _, w := range []string{"A", "CRANE", "ALLOY", "MISSISSIPPI", "EEEEE"} {
		got := Score(w, w)
		require.Len(t, got, len(w))
		for i, c := range got {
			assert.Equalf(t, Exact, c, "%s position %d", w, i)
		}
	}
}

// checkScore asserts what must hold for any secret and guess of equal
// length: one clue per letter, Exact exactly where letters match, and no
// letter claimed more often than the secret holds it.
func checkScore(t *testing.T, secret, guess string) {
	t.Helper()
	clues := Score(secret, guess)
	require.Lenf(t, clues, len(guess), "%s/%s", secret, guess)

	for i := range clues {
		assert.Equalf(t, secret[i] == guess[i], clues[i] == Exact, "%s/%s position %d", secret, guess, i)
	}
	for l := byte('A'); l <= 'Z'; l++ {
		claimed := 0
		for i := range clues {
			if guess[i] == l && clues[i] != Absent {
				claimed++
			}
		}
		supply := strings.Count(secret, string(l))
		assert.LessOrEqualf(t, claimed, supply, "%s/%s letter %c", secret, guess, l)
		// Nothing is left unclaimed while the guess still has that letter.
		assert.Equalf(t, min(supply, strings.Count(guess, string(l))), claimed, "%s/%s letter %c", secret, guess, l)
	}
}

func TestScoreConservesLetters(t *testing.T) {
	pairs := [][2]string{
		{"ALLOY", "LOLLY"},
		{"ABBEY", "BABES"},
		{"SPEED", "EERIE"},
		{"LLAMA", "ALLAL"},
		{"ROBOT", "OOOOO"},
	}
	for _, p := range pairs {
		checkScore(t, p[0], p[1])
	}
}

// randomWord draws from a small alphabet so repeated letters are common.
func randomWord(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ABCDE"[rng.IntN(5)]
	}
	return string(b)
}

func TestScoreRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 5000; i++ {
		n := 1 + rng.IntN(8)
		checkScore(t, randomWord(rng, n), randomWord(rng, n))
	}
}

func FuzzScore(f *testing.F) {
	f.Add([]byte("ALLOY"), []byte("LOLLY"))
	f.Add([]byte("CRANE"), []byte("EERIE"))
	f.Fuzz(func(t *testing.T, a, b []byte) {
		n := min(len(a), len(b), 12)
		secret := make([]byte, n)
		guess := make([]byte, n)
		for i := 0; i < n; i++ {
			secret[i] = 'A' + a[i]%6
			guess[i] = 'A' + b[i]%6
		}
		checkScore(t, string(secret), string(guess))
	})
}

func TestScoreLengthMismatch(t *testing.T) {
	got := Score("CRANE", "CRAN")
	assert.Equal(t, []Clue{Absent, Absent, Absent, Absent, Absent}, got)
}

func TestValidateOrder(t *testing.T) {
	dict := wordSet{"CRANE": true, "TRACE": true}
	rules := Rules{Length: 5, Dictionary: dict, Hard: true}

	assert.Equal(t, ReasonWrongLength, Validate("", rules, nil))
	assert.Equal(t, ReasonWrongLength, Validate("CRANES", rules, nil))
	// Length wins over dictionary.
	assert.Equal(t, ReasonWrongLength, Validate("ZZ", rules, nil))
	assert.Equal(t, ReasonNotInDictionary, Validate("ZZZZZ", rules, nil))
	assert.Equal(t, ReasonNone, Validate("CRANE", rules, nil))
}

func TestValidateNonAlphabeticDoesNotPanic(t *testing.T) {
	rules := Rules{Length: 5, Dictionary: wordSet{"CRANE": true}}
	assert.Equal(t, ReasonNotInDictionary, Validate("12345", rules, nil))
	assert.Equal(t, ReasonWrongLength, Validate("\x00", rules, nil))
}

func TestValidateDictionaryEnforcement(t *testing.T) {
	dict := wordSet{"CRANE": true}
	assert.Equal(t, ReasonNotInDictionary, Validate("QWERT", Rules{Length: 5, Dictionary: dict}, nil))
	assert.Equal(t, ReasonNone, Validate("QWERT", Rules{Length: 5}, nil))
}

func TestValidateHardMode(t *testing.T) {
	history := []Record{{Word: "TRACE", Clues: Score("CRANE", "TRACE")}}
	rules := Rules{Length: 5, Hard: true}

	// R dropped from position 1.
	assert.Equal(t, ReasonHardMode, Validate("BLAME", rules, history))
	// Exact letters kept but the present C is missing.
	assert.Equal(t, ReasonHardMode, Validate("BRAKE", rules, history))
	assert.Equal(t, ReasonNone, Validate("CRANE", rules, history))
	assert.Equal(t, ReasonNone, Validate("BRACE", rules, history))

	// Without hard mode anything of the right length goes.
	assert.Equal(t, ReasonNone, Validate("BLAME", Rules{Length: 5}, history))
}

func TestValidateHardModeOnlyLooksAtLastRecord(t *testing.T) {
	history := []Record{
		{Word: "TRACE", Clues: Score("CRANE", "TRACE")},
		{Word: "MOIST", Clues: Score("CRANE", "MOIST")},
	}
	assert.Equal(t, ReasonNone, Validate("BLIMP", Rules{Length: 5, Hard: true}, history))
}

func TestValidateHardModeConsumesLetters(t *testing.T) {
	// Two present E's need two E's in the next guess.
	last := Record{Word: "EERIE", Clues: []Clue{Present, Present, Absent, Absent, Absent}}
	rules := Rules{Length: 5, Hard: true}

	assert.Equal(t, ReasonHardMode, Validate("STEAL", rules, []Record{last}))
	assert.Equal(t, ReasonNone, Validate("SHEEP", rules, []Record{last}))

	// An exact letter cannot also satisfy a present clue for the same letter.
	last = Record{Word: "LOLLY", Clues: []Clue{Present, Absent, Exact, Absent, Absent}}
	assert.Equal(t, ReasonHardMode, Validate("ABLOT", rules, []Record{last}))
	assert.Equal(t, ReasonNone, Validate("LALOT", rules, []Record{last}))
}

func TestValidateIsRepeatable(t *testing.T) {
	history := []Record{{Word: "TRACE", Clues: Score("CRANE", "TRACE")}}
	rules := Rules{Length: 5, Hard: true, Dictionary: wordSet{"BLAME": true, "CRANE": true}}
	before := history[0].clone()

	for i := 0; i < 3; i++ {
		assert.Equal(t, ReasonHardMode, Validate("BLAME", rules, history))
		assert.Equal(t, ReasonNone, Validate("CRANE", rules, history))
	}
	assert.Equal(t, before, history[0])
}

func TestReasonMessages(t *testing.T) {
	assert.Empty(t, ReasonNone.Message())
	assert.Empty(t, ReasonWrongLength.Message())
	assert.Equal(t, "Invalid word", ReasonNotInDictionary.Message())
	assert.Equal(t, "All clues must be used", ReasonHardMode.Message())
}
