package rules

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateCNPJ(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"formatted", "12.345.678/0001-99", true},
		{"digits only", "12345678000199", true},
		{"too short", "123", false},
		{"empty", "", false},
		{"thirteen digits and a letter", "1234567800019a", false},
		{"fifteen digits", "123456780001999", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ValidateCNPJ(tc.raw))
		})
	}
}

func TestRoomCapacity(t *testing.T) {
	cases := []struct {
		name string
		area float64
		want int
	}{
		{"standard classroom", 24.0, 20},
		{"exactly one occupant", 1.2, 1},
		{"below one occupant", 1.19, 0},
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"nan", math.NaN(), 0},
		{"truncates toward zero", 50, 41},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RoomCapacity(tc.area))
		})
	}
}

func TestClassCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}$`)

	cases := []struct {
		year, level, sequence int
		want                  string
	}{
		{2025, 201, 1, "025.201.001"},
		{2024, 102, 13, "024.102.013"},
		{2030, 101, 999, "030.101.999"},
	}

	for _, tc := range cases {
		code := ClassCode(tc.year, tc.level, tc.sequence)
		require.Equal(t, tc.want, code)
		require.Regexp(t, pattern, code)
	}
}

func TestRegistrationNumber(t *testing.T) {
	now := time.Date(2025, 2, 10, 15, 4, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	nra := RegistrationNumber(now, rng)

	require.Len(t, nra, 17)
	require.Equal(t, "NRA202502101504", nra[:15])

	suffix, err := strconv.Atoi(nra[15:])
	require.NoError(t, err)
	require.GreaterOrEqual(t, suffix, 10)
	require.LessOrEqual(t, suffix, 99)
}

func TestAgeInYears(t *testing.T) {
	birth := time.Date(2016, 3, 15, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 8, AgeInYears(birth, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 9, AgeInYears(birth, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 9, AgeInYears(birth, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCheckAgeEligibility(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	born := func(year int) time.Time {
		return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	t.Run("incomplete data", func(t *testing.T) {
		ok, msg := CheckAgeEligibility(time.Time{}, "Infantil Creche", now)
		require.False(t, ok)
		require.Equal(t, "Dados incompletos.", msg)

		ok, msg = CheckAgeEligibility(born(2016), "", now)
		require.False(t, ok)
		require.Equal(t, "Dados incompletos.", msg)
	})

	t.Run("too old for early childhood", func(t *testing.T) {
		ok, msg := CheckAgeEligibility(born(2015), "Infantil Pré-escola", now)
		require.False(t, ok)
		require.Contains(t, msg, "10 anos")
		require.Contains(t, msg, "Educação Infantil")
	})

	t.Run("young enough for early childhood", func(t *testing.T) {
		ok, msg := CheckAgeEligibility(born(2020), "Infantil Creche", now)
		require.True(t, ok)
		require.Equal(t, "Idade compatível.", msg)
	})

	t.Run("too young for elementary", func(t *testing.T) {
		ok, msg := CheckAgeEligibility(born(2020), "Fundamental Anos Iniciais", now)
		require.False(t, ok)
		require.Contains(t, msg, "Ensino Fundamental")
	})

	t.Run("nine year old fits elementary", func(t *testing.T) {
		ok, msg := CheckAgeEligibility(born(2016), "Fundamental Anos Iniciais", now)
		require.True(t, ok)
		require.Equal(t, "Idade compatível.", msg)
	})

	t.Run("unmatched label passes", func(t *testing.T) {
		ok, _ := CheckAgeEligibility(born(2000), "Educação de Jovens e Adultos", now)
		require.True(t, ok)
	})
}
