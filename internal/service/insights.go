package service

import "harmony-match/internal/domain"

// Report calcula la compatibilidad y le agrega etiquetas y fortalezas.
func (e *CompatibilityEngine) Report(year1, year2 int) domain.Report {
	result := e.CalculateCompatibility(year1, year2)
	return domain.Report{
		CompatibilityResult: result,
		Tags:                DynamicsTags(result.Dynamics),
		Strengths:           Strengths(result),
	}
}

// DynamicsTags traduce las banderas de dinámica a etiquetas, en orden fijo.
func DynamicsTags(d domain.Dynamics) []domain.DynamicsTag {
	tags := []domain.DynamicsTag{}
	if d.IsTrineMatch {
		tags = append(tags, domain.DynamicsTag{Text: "Trine Match", Kind: domain.TagPositive, Icon: "★"})
	}
	if d.IsSecretFriend {
		tags = append(tags, domain.DynamicsTag{Text: "Secret Friends", Kind: domain.TagPositive, Icon: "♡"})
	}
	if d.IsClash {
		tags = append(tags, domain.DynamicsTag{Text: "Opposite Signs", Kind: domain.TagNegative, Icon: "⚠"})
	}
	if d.IsSameAnimal {
		tags = append(tags, domain.DynamicsTag{Text: "Same Sign", Kind: domain.TagNeutral, Icon: "♾"})
	}
	if d.IsSameElement {
		tags = append(tags, domain.DynamicsTag{Text: "Shared Element", Kind: domain.TagNeutral, Icon: "✴"})
	}
	return tags
}

// Strengths arma la lista de fortalezas del vínculo a partir del resultado.
func Strengths(r domain.CompatibilityResult) []string {
	var out []string
	p1, p2 := r.Partner1, r.Partner2

	if r.Dynamics.IsTrineMatch {
		out = append(out,
			"Natural understanding and shared values between "+p1.Animal.String()+" and "+p2.Animal.String(),
			"Similar approaches to life goals and ambitions",
		)
	}
	if r.Dynamics.IsSecretFriend {
		out = append(out,
			"A deep, private bond that others may not see",
			"Intuitive understanding of each other's needs",
		)
	}
	if r.PolarityRelationship.Balanced {
		out = append(out, "Complementary Yin-Yang energies create natural balance")
	}

	switch r.ElementRelationship.Relationship {
	case domain.RelationshipGenerating:
		out = append(out, p1.Element.String()+" naturally supports and nurtures "+p2.Element.String())
	case domain.RelationshipReceiving:
		out = append(out, p2.Element.String()+" provides nurturing energy to "+p1.Element.String())
	case domain.RelationshipSame:
		out = append(out, "Shared "+p1.Element.String()+" element creates deep understanding")
	}

	switch {
	case r.Scores.Overall >= 70:
		out = append(out, "Strong foundation for long-term harmony", "Natural chemistry and attraction")
	case r.Scores.Overall >= 50:
		out = append(out,
			"Potential for growth through understanding differences",
			"Opportunity to learn from each other's perspectives",
		)
	}

	if len(out) == 0 {
		out = append(out,
			"Every relationship has unique strengths to discover",
			"Growth comes from understanding and accepting differences",
		)
	}
	return out
}
