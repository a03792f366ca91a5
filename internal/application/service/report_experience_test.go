package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateExperience_SmallSampleScoresZero(t *testing.T) {
	report := calculateExperience(experienceInputs{
		RebookingRate:     100,
		TipRate:           25,
		RetentionRate:     100,
		AttachmentRate:    100,
		TotalAppointments: 4,
	})

	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, "needs-attention", report.Status)
}

func TestCalculateExperience_PerfectInputs(t *testing.T) {
	report := calculateExperience(experienceInputs{
		RebookingRate:     100,
		TipRate:           25,
		RetentionRate:     100,
		AttachmentRate:    100,
		TotalAppointments: 20,
	})

	assert.Equal(t, 100.0, report.Score)
	assert.Equal(t, "strong", report.Status)
}

func TestCalculateExperience_WeightedComposite(t *testing.T) {
	// 0.35*60 + 0.30*50 + 0.20*40 + 0.15*30 = 48.5
	report := calculateExperience(experienceInputs{
		RebookingRate:     60,
		TipRate:           12.5, // half the ceiling -> sub-score 50
		RetentionRate:     40,
		AttachmentRate:    30,
		TotalAppointments: 10,
	})

	assert.Equal(t, 48.5, report.Score)
	assert.Equal(t, "needs-attention", report.Status)
}

func TestCalculateExperience_TipRateCapped(t *testing.T) {
	capped := calculateExperience(experienceInputs{
		TipRate:           25,
		TotalAppointments: 10,
	})
	above := calculateExperience(experienceInputs{
		TipRate:           60,
		TotalAppointments: 10,
	})

	assert.Equal(t, capped.Score, above.Score)
}

func TestCalculateExperience_ClampsOverflowingInputs(t *testing.T) {
	report := calculateExperience(experienceInputs{
		RebookingRate:     130,
		TipRate:           25,
		RetentionRate:     100,
		AttachmentRate:    250,
		TotalAppointments: 10,
	})

	assert.Equal(t, 100.0, report.Score)
}

func TestExperienceBand(t *testing.T) {
	assert.Equal(t, "needs-attention", experienceBand(0))
	assert.Equal(t, "needs-attention", experienceBand(49.9))
	assert.Equal(t, "watch", experienceBand(50))
	assert.Equal(t, "watch", experienceBand(69.9))
	assert.Equal(t, "strong", experienceBand(70))
	assert.Equal(t, "strong", experienceBand(100))
}
