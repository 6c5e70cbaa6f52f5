package health

import "time"

type AgeBracket string

const (
	AgeBracketBalita AgeBracket = "Balita"
	AgeBracketRemaja AgeBracket = "Remaja"
	AgeBracketDewasa AgeBracket = "Dewasa"
	AgeBracketLansia AgeBracket = "Lansia"
)

// AgeBrackets lists the brackets in display order.
var AgeBrackets = []AgeBracket{AgeBracketBalita, AgeBracketRemaja, AgeBracketDewasa, AgeBracketLansia}

// AgeInYears counts completed years, so the birthday itself is the first day of the new age.
func AgeInYears(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func BracketForAge(age int) AgeBracket {
	switch {
	case age < 5:
		return AgeBracketBalita
	case age <= 17:
		return AgeBracketRemaja
	case age <= 59:
		return AgeBracketDewasa
	default:
		return AgeBracketLansia
	}
}

func BracketFor(birth, now time.Time) AgeBracket {
	return BracketForAge(AgeInYears(birth, now))
}
