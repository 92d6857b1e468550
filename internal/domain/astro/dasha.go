package astro

import "time"

// julianYearHours is the length of one Julian year used by the Vimshottari
// walk (365.25 days).
const julianYearHours = 365.25 * 24.0

// DashaLordAt returns the Vimshottari mahadasha lord governing the target
// instant for a person whose moon stood at birthMoonLon when they were born.
//
// The birth nakshatra's ruler opens the cycle with a remaining duration
// proportional to the arc of the mansion still ahead of the moon; after that
// the fixed nine-period sequence repeats until the elapsed time fits inside
// the current period. Targets before birth are clamped to the birth instant.
func DashaLordAt(birthMoonLon float64, birth, target time.Time) Planet {
	nakIdx := NakshatraIndex(birthMoonLon)
	lord := NakshatraLords[nakIdx]

	startIdx := 0
	for i, period := range DashaSequence {
		if period.Lord == lord {
			startIdx = i
			break
		}
	}

	remainder := norm360(birthMoonLon) - float64(nakIdx)*NakshatraSpan
	fractionLeft := (NakshatraSpan - remainder) / NakshatraSpan
	startYears := DashaSequence[startIdx].Years * fractionLeft

	yearsElapsed := target.Sub(birth).Hours() / julianYearHours
	if yearsElapsed < 0 {
		yearsElapsed = 0
	}

	if yearsElapsed < startYears {
		return lord
	}
	yearsElapsed -= startYears

	idx := (startIdx + 1) % len(DashaSequence)
	for {
		if yearsElapsed < DashaSequence[idx].Years {
			return DashaSequence[idx].Lord
		}
		yearsElapsed -= DashaSequence[idx].Years
		idx = (idx + 1) % len(DashaSequence)
	}
}

// StartDashaLord is the ruler a nakshatra opens the Vimshottari cycle with.
func StartDashaLord(n Nakshatra) Planet {
	for i, name := range Nakshatras {
		if name == n {
			return NakshatraLords[i]
		}
	}
	return ""
}
