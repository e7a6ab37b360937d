// Package rules holds the pure business-rule functions shared by the
// registration workflows: document format checks, capacity derivation and
// identifier generation.
package rules

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// occupantAreaM2 is the floor area reserved per occupant when deriving a
// room's suggested capacity.
const occupantAreaM2 = 1.2

// ValidateCNPJ reports whether the digit-only projection of raw has exactly
// 14 digits. Check digits are not verified; format only.
func ValidateCNPJ(raw string) bool {
	return len(digitsOnly(raw)) == 14
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RoomCapacity derives the suggested occupant capacity for a floor area in
// square meters. Non-positive or invalid areas yield zero.
func RoomCapacity(floorArea float64) int {
	if math.IsNaN(floorArea) || floorArea <= 0 {
		return 0
	}
	return int(floorArea / occupantAreaM2)
}

// ClassCode builds the "YYY.LLL.SSS" class group code: the last three digits
// of the academic year, the level code and the sequence number, each
// zero-padded to three digits. Uniqueness is not this function's concern;
// the store rejects duplicate codes at creation time.
func ClassCode(year, levelCode, sequence int) string {
	return fmt.Sprintf("%03d.%03d.%03d", year%1000, levelCode, sequence)
}

// RegistrationNumber generates a student registration identifier (NRA) from
// the current timestamp at minute precision and a two-digit random suffix.
// Two calls within the same minute can collide; that is acceptable for a
// single in-memory session and documented as such.
func RegistrationNumber(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("NRA%s%02d", now.Format("200601021504"), 10+rng.Intn(90))
}

// CheckAgeEligibility validates a student's age against a curriculum stage
// label. It is a deliberate placeholder for the real MEC cutoff-date tables:
// the stage is matched by substring and only two rules exist. The returned
// message is surfaced to the operator verbatim.
func CheckAgeEligibility(birthDate time.Time, levelLabel string, now time.Time) (bool, string) {
	if birthDate.IsZero() || strings.TrimSpace(levelLabel) == "" {
		return false, "Dados incompletos."
	}

	age := AgeInYears(birthDate, now)

	if strings.Contains(levelLabel, "Infantil") && age > 6 {
		return false, fmt.Sprintf("Aluno com %d anos. Idade incompatível para Educação Infantil.", age)
	}
	if strings.Contains(levelLabel, "Fundamental") && age < 6 {
		return false, fmt.Sprintf("Aluno com %d anos. Muito jovem para o Ensino Fundamental.", age)
	}

	return true, "Idade compatível."
}

// AgeInYears computes the whole-year age at the reference date, subtracting
// one when the birthday has not yet occurred that year.
func AgeInYears(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}
