package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfessionalismBonusEmptyText(t *testing.T) {
	assert.Zero(t, professionalismBonus(""))
	assert.Zero(t, professionalismBonus("   "))
}

func TestProfessionalismBonusTiers(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "single structure header",
			text: "Responsibilities: answer phones and greet visitors at the front desk daily.",
			want: 4,
		},
		{
			name: "structure plus one professional term",
			text: "Requirements: at least two years of experience in retail. Competitive salary offered.",
			want: 6, // header tier 1 (+4), two professional terms (+2)
		},
		{
			name: "single technical skill",
			text: "Looking for someone comfortable with sql reporting on a small team.",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, professionalismBonus(tt.text), 1e-9)
		})
	}
}

func TestProfessionalismBonusCapped(t *testing.T) {
	text := `Senior Platform Engineer

About the role: build and operate our core services.

Responsibilities: design systems in python and java, manage docker and
kubernetes deployments, and support data analysis pipelines.

Requirements: bachelor's degree, five years of experience, strong
communication skills, and a proven track record.

What we offer: competitive salary, health insurance, 401k, paid time off,
and professional development support. ` + strings.Repeat("We invest in mentorship and career growth for every engineer on the team. ", 16)

	assert.InDelta(t, maxProfessionalismBonus, professionalismBonus(text), 1e-9)
}

func TestProfessionalismBonusWordCountTiers(t *testing.T) {
	word := "plain "

	short := professionalismBonus(strings.Repeat(word, 49))
	adequate := professionalismBonus(strings.Repeat(word, 60))
	detailed := professionalismBonus(strings.Repeat(word, 120))
	thorough := professionalismBonus(strings.Repeat(word, 220))

	assert.Zero(t, short)
	assert.InDelta(t, 1, adequate, 1e-9)
	assert.InDelta(t, 3, detailed, 1e-9)
	assert.InDelta(t, 5, thorough, 1e-9)
}
