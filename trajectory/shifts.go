package trajectory

import "signal-lab/domain"

const (
	// maxRelatedGapSeconds separates two samples far enough apart in time
	// to be unrelated; such pairs are never reported as shifts.
	maxRelatedGapSeconds = 600.0

	// shiftIntensityDelta is the intensity change that counts as a shift
	// even when the label stays the same.
	shiftIntensityDelta = 20.0

	// strongShiftDelta marks a negative shift strong enough to make the
	// whole pattern significant on its own.
	strongShiftDelta = 30.0
)

// DetectShifts scans adjacent sample pairs for emotionally significant
// transitions. It works on smoothed or raw trajectories alike; fewer than
// two samples yield an empty report.
func DetectShifts(samples []domain.EmotionSample) domain.ShiftReport {
	report := domain.ShiftReport{Shifts: []domain.Shift{}}
	if len(samples) < 2 {
		return report
	}

	for i := 1; i < len(samples); i++ {
		from, to := samples[i-1], samples[i]

		if float64(to.Timestamp-from.Timestamp)/1000 >= maxRelatedGapSeconds {
			continue
		}

		delta := to.Intensity - from.Intensity
		if from.Label == to.Label && abs(delta) < shiftIntensityDelta {
			continue
		}

		report.Shifts = append(report.Shifts, domain.Shift{
			From:      from,
			To:        to,
			Type:      shiftType(from, to, delta),
			Timestamp: to.Timestamp,
		})
	}

	report.Significant = significant(report.Shifts)
	return report
}

// shiftType classifies a transition. A polarity change takes the new
// polarity. Within one polarity the direction of the intensity change
// decides: rising intensity amplifies the shared polarity, falling
// intensity inverts it. Neutral stretches stay neutral.
func shiftType(from, to domain.EmotionSample, delta float64) domain.Polarity {
	fromPolarity := domain.PolarityOf(from.Label)
	toPolarity := domain.PolarityOf(to.Label)

	if fromPolarity != toPolarity {
		return toPolarity
	}
	if abs(delta) < shiftIntensityDelta || toPolarity == domain.NeutralPolarity {
		return domain.NeutralPolarity
	}

	rising := delta > 0
	if toPolarity == domain.Positive {
		if rising {
			return domain.Positive
		}
		return domain.Negative
	}
	// Shared negative polarity: deepening is negative, easing is positive.
	if rising {
		return domain.Negative
	}
	return domain.Positive
}

// significant is true when the shift pattern as a whole warrants
// attention: repeated negative shifts, one strong negative shift, or
// simply an unstable trajectory with many transitions.
func significant(shifts []domain.Shift) bool {
	negatives := 0
	for _, s := range shifts {
		if s.Type != domain.Negative {
			continue
		}
		negatives++
		if abs(s.To.Intensity-s.From.Intensity) > strongShiftDelta {
			return true
		}
	}
	return negatives > 1 || len(shifts) > 2
}
