package astro

// padaSyllables maps each nakshatra to its four naming syllables, pada 1..4.
// Aligned with the classical Jyotish naming tables.
var padaSyllables = map[Nakshatra][4]string{
	"Ashwini":           {"Chu", "Che", "Cho", "La"},
	"Bharani":           {"Li", "Lu", "Le", "Lo"},
	"Krittika":          {"A", "E", "U", "Ea"},
	"Rohini":            {"O", "Va", "Vi", "Vu"},
	"Mrigashira":        {"Ve", "Vo", "Ka", "Ki"},
	"Ardra":             {"Ku", "Gha", "Nga", "Cha"},
	"Punarvasu":         {"Ke", "Ko", "Ha", "Hi"},
	"Pushya":            {"Hu", "He", "Ho", "Da"},
	"Ashlesha":          {"Di", "Du", "De", "Do"},
	"Magha":             {"Ma", "Mi", "Mu", "Me"},
	"Purva Phalguni":    {"Mo", "Ta", "Ti", "Tu"},
	"Uttara Phalguni":   {"Te", "To", "Pa", "Pi"},
	"Hasta":             {"Pu", "Sha", "Na", "Tha"},
	"Chitra":            {"Pe", "Po", "Ra", "Ri"},
	"Swati":             {"Ru", "Re", "Ro", "Ta"},
	"Vishakha":          {"Ti", "Tu", "Te", "To"},
	"Anuradha":          {"Na", "Ni", "Nu", "Ne"},
	"Jyeshtha":          {"No", "Ya", "Yi", "Yu"},
	"Mula":              {"Ye", "Yo", "Ba", "Bi"},
	"Purva Ashadha":     {"Bu", "Da", "Bha", "Dha"},
	"Uttara Ashadha":    {"Be", "Bo", "Ja", "Ji"},
	"Shravana":          {"Ju", "Je", "Jo", "Gha"},
	"Dhanishta":         {"Ga", "Gi", "Gu", "Ge"},
	"Shatabhisha":       {"Go", "Sa", "Si", "Su"},
	"Purva Bhadrapada":  {"Se", "So", "Da", "Di"},
	"Uttara Bhadrapada": {"Du", "Tha", "Jha", "Na"},
	"Revati":            {"De", "Do", "Cha", "Chi"},
}

// SyllablesFor returns the recommended naming syllables for a nakshatra pada.
func SyllablesFor(n Nakshatra, pada int) []string {
	table, ok := padaSyllables[n]
	if !ok || pada < 1 || pada > 4 {
		return nil
	}
	return []string{table[pada-1]}
}
