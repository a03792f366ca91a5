package service

// Experience-score weights and bands. These are fixed constants of the
// scoring model, not configuration.
const (
	weightRebooking  = 0.35
	weightTipRate    = 0.30
	weightRetention  = 0.20
	weightAttachment = 0.15

	// A 25% tip rate maps to a perfect tip sub-score; anything above is
	// capped rather than letting exceptional tippers dominate the
	// composite.
	tipRateCeiling = 25.0

	// Below this many appointments in the period the sample is too small
	// to score at all.
	experienceMinSample = 5

	experienceStatusNeedsAttention = "needs-attention"
	experienceStatusWatch          = "watch"
	experienceStatusStrong         = "strong"
)

// experienceInputs are the four sub-metrics feeding the composite score
type experienceInputs struct {
	RebookingRate     float64
	TipRate           float64
	RetentionRate     float64
	AttachmentRate    float64
	TotalAppointments int
}

// calculateExperience combines the four sub-metrics into one weighted
// composite on a 0-100 scale. Each input is clamped to [0,100] before
// weighting; the attachment rate in particular can exceed 100 when
// upstream counts duplicate. Periods with fewer than five appointments
// are forced to zero regardless of how favorable the sub-metrics look.
func calculateExperience(in experienceInputs) ExperienceReport {
	if in.TotalAppointments < experienceMinSample {
		return ExperienceReport{Score: 0, Status: experienceBand(0)}
	}

	tipScore := clamp(in.TipRate/tipRateCeiling*100, 0, 100)

	score := weightRebooking*clamp(in.RebookingRate, 0, 100) +
		weightTipRate*tipScore +
		weightRetention*clamp(in.RetentionRate, 0, 100) +
		weightAttachment*clamp(in.AttachmentRate, 0, 100)

	score = round1(score)
	return ExperienceReport{Score: score, Status: experienceBand(score)}
}

// experienceBand maps a composite score to its status band.
func experienceBand(score float64) string {
	switch {
	case score < 50:
		return experienceStatusNeedsAttention
	case score < 70:
		return experienceStatusWatch
	default:
		return experienceStatusStrong
	}
}
