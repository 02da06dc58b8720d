package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmony-match/internal/domain"
)

func TestDynamicsTags_Order(t *testing.T) {
	tags := DynamicsTags(domain.Dynamics{
		IsTrineMatch:   true,
		IsSecretFriend: true,
		IsClash:        true,
		IsSameAnimal:   true,
		IsSameElement:  true,
	})
	require.Len(t, tags, 5)

	texts := make([]string, len(tags))
	for i, tag := range tags {
		texts[i] = tag.Text
	}
	assert.Equal(t, []string{"Trine Match", "Secret Friends", "Opposite Signs", "Same Sign", "Shared Element"}, texts)
	assert.Equal(t, domain.TagNegative, tags[2].Kind)
	assert.Equal(t, "⚠", tags[2].Icon)

	assert.Empty(t, DynamicsTags(domain.Dynamics{}))
}

func TestReport_SecretFriends(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.Report(1990, 1991)
	assert.Equal(t, engine.CalculateCompatibility(1990, 1991), report.CompatibilityResult)
	require.Len(t, report.Tags, 2)
	assert.Equal(t, "Secret Friends", report.Tags[0].Text)
	assert.Equal(t, "Shared Element", report.Tags[1].Text)

	assert.Equal(t, []string{
		"A deep, private bond that others may not see",
		"Intuitive understanding of each other's needs",
		"Complementary Yin-Yang energies create natural balance",
		"Shared Wood element creates deep understanding",
		"Strong foundation for long-term harmony",
		"Natural chemistry and attraction",
	}, report.Strengths)
}

func TestStrengths_FallbackForLowScores(t *testing.T) {
	engine := newTestEngine(t)

	strengths := Strengths(engine.CalculateCompatibility(1984, 1990))
	assert.Equal(t, []string{
		"Every relationship has unique strengths to discover",
		"Growth comes from understanding and accepting differences",
	}, strengths)
}

func TestStrengths_TrineAndModerateBand(t *testing.T) {
	result := domain.CompatibilityResult{
		Partner1: domain.Profile{Animal: domain.Rat, Element: domain.Earth},
		Partner2: domain.Profile{Animal: domain.Monkey, Element: domain.Metal},
		Scores:   domain.Scores{Overall: 60},
		ElementRelationship: domain.ElementCompatibility{
			Relationship: domain.RelationshipGenerating,
		},
		Dynamics: domain.Dynamics{IsTrineMatch: true},
	}

	assert.Equal(t, []string{
		"Natural understanding and shared values between Rat and Monkey",
		"Similar approaches to life goals and ambitions",
		"Earth naturally supports and nurtures Metal",
		"Potential for growth through understanding differences",
		"Opportunity to learn from each other's perspectives",
	}, Strengths(result))
}

func TestStrengths_Receiving(t *testing.T) {
	result := domain.CompatibilityResult{
		Partner1:            domain.Profile{Element: domain.Fire},
		Partner2:            domain.Profile{Element: domain.Wood},
		Scores:              domain.Scores{Overall: 45},
		ElementRelationship: domain.ElementCompatibility{Relationship: domain.RelationshipReceiving},
	}
	assert.Equal(t, []string{"Wood provides nurturing energy to Fire"}, Strengths(result))
}

func TestReport_SameSignCarriesTrineTag(t *testing.T) {
	engine := newTestEngine(t)

	report := engine.Report(2000, 2000)
	texts := make([]string, len(report.Tags))
	for i, tag := range report.Tags {
		texts[i] = tag.Text
	}
	assert.Equal(t, []string{"Trine Match", "Same Sign", "Shared Element"}, texts)
	assert.Equal(t, 70, report.Scores.Animal)
	assert.Contains(t, report.Strengths, "Natural understanding and shared values between Dragon and Dragon")
}
