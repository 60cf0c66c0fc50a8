package services

import "strings"

// Seniority ranks by designation; lower rank = more senior. Staff with
// an unknown designation sort last.
const unrankedSeniority = 8

var seniorityRanks = map[string]int{
	"head":                          1,
	"professor":                     2,
	"associate professor":           3,
	"assistant professor level iii": 4,
	"assistant professor level ii":  5,
	"assistant professor level i":   6,
	"assistant professor":           7,
}

// SeniorityRank maps a raw designation string to its rank.
func SeniorityRank(designation string) int {
	key := strings.ToLower(strings.TrimSpace(designation))
	if rank, ok := seniorityRanks[key]; ok {
		return rank
	}
	return unrankedSeniority
}
