package chinaid

// Length is the number of characters in a resident identity number.
const Length = 18

const bodyLength = Length - 1

var (
	weights    = [bodyLength]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	checkChars = [11]rune{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// checksum scans the first 17 runes and returns the expected check character.
// The caller guarantees len(runes) >= 17.
func checksum(runes []rune) (rune, error) {
	sum := 0
	for i, r := range runes[:bodyLength] {
		if !isDigit(r) {
			return 0, &DigitError{Char: r, Position: i}
		}
		sum += int(r-'0') * weights[i]
	}
	return checkChars[sum%11], nil
}

// CheckCharacter computes the check character for the 17-digit body of a number.
func CheckCharacter(body string) (rune, error) {
	runes := []rune(body)
	if len(runes) != bodyLength {
		return 0, &LengthError{Length: len(runes), Want: bodyLength, Exact: true}
	}
	return checksum(runes)
}
