package engine

// Sign is one of the twelve western zodiac signs.
type Sign int

const (
	SignUnknown Sign = iota
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// zodiacSpan is an inclusive interval from (fromMonth, fromDay) to (toMonth, toDay).
// Every span starts in one month and ends in the next.
type zodiacSpan struct {
	sign      Sign
	fromMonth int
	fromDay   int
	toMonth   int
	toDay     int
}

var zodiacTable = []zodiacSpan{
	{Aries, 3, 21, 4, 19},
	{Taurus, 4, 20, 5, 20},
	{Gemini, 5, 21, 6, 20},
	{Cancer, 6, 21, 7, 22},
	{Leo, 7, 23, 8, 22},
	{Virgo, 8, 23, 9, 22},
	{Libra, 9, 23, 10, 22},
	{Scorpio, 10, 23, 11, 21},
	{Sagittarius, 11, 22, 12, 21},
	{Capricorn, 12, 22, 1, 19},
	{Aquarius, 1, 20, 2, 18},
	{Pisces, 2, 19, 3, 20},
}

type signInfo struct {
	name   string
	color  string
	traits string
}

var signs = map[Sign]signInfo{
	Aries:       {"Aries", "Red", "Courageous, energetic, willful, commanding, leading."},
	Taurus:      {"Taurus", "Forest Green", "Pleasure seeking, loves control, dependable, grounded, sensual."},
	Gemini:      {"Gemini", "Yellow", "Cerebral, chatty, loves learning and education, charming, adventurous."},
	Cancer:      {"Cancer", "Deep Blue", "Emotional, group oriented, seeks security, family."},
	Leo:         {"Leo", "Orange", "Generous, organized, protective, radiant."},
	Virgo:       {"Virgo", "Brown", "Particular, logical, practical, sense of duty, critical."},
	Libra:       {"Libra", "Pink", "Balanced, seeks beauty, sense of justice."},
	Scorpio:     {"Scorpio", "Black", "Passionate, exacting, loves extremes, combative, reflective."},
	Sagittarius: {"Sagittarius", "Purple", "Happy, absent minded, creative, adventurous."},
	Capricorn:   {"Capricorn", "Gray", "Timeless, driven, calculating, ambitious."},
	Aquarius:    {"Aquarius", "Light Blue", "Forward thinking, communicative, people oriented, stubborn, generous."},
	Pisces:      {"Pisces", "Seafoam Green", "Likeable, energetic, passionate, sensitive."},
}

const unknownLabel = "Unknown"

// ZodiacOf returns the sign for a (day, month) pair, or SignUnknown when the pair lies
// outside every interval (only possible for impossible dates).
func ZodiacOf(day, month int) Sign {
	for _, s := range zodiacTable {
		if (month == s.fromMonth && day >= s.fromDay) || (month == s.toMonth && day <= s.toDay) {
			return s.sign
		}
	}
	return SignUnknown
}

// String returns the sign's name.
func (s Sign) String() string {
	if info, ok := signs[s]; ok {
		return info.name
	}
	return unknownLabel
}

// Color returns the sign's associated color.
func (s Sign) Color() string {
	if info, ok := signs[s]; ok {
		return info.color
	}
	return unknownLabel
}

// Traits returns a short description of the sign's characteristics.
func (s Sign) Traits() string {
	if info, ok := signs[s]; ok {
		return info.traits
	}
	return unknownLabel
}
