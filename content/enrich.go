package content

import "strings"

// Content-type tags recognized by the enricher.
const (
	TypeProblem   = "problem"
	TypeSolution  = "solution"
	TypeFeature   = "feature"
	TypeMarket    = "market"
	TypeAdvantage = "advantage"
	TypeAudience  = "audience"
	TypeCTA       = "cta"
	TypeChallenge = "challenge"
	TypeGeneral   = "general"
)

// expandThreshold is the target length the enricher pads narrative text up
// to. Calls to action read better short.
func expandThreshold(contentType string) int {
	if contentType == TypeCTA {
		return 100
	}
	return 200
}

// intelligentThreshold allows more substantial body content.
const intelligentThreshold = 400

// expansions holds the boilerplate candidates appended when narrative
// content runs short. Lists are finite, so expansion always terminates.
var expansions = map[string][]string{
	TypeAdvantage: {
		"This provides a clear competitive edge in the market.",
		"Our solution outperforms traditional approaches significantly.",
		"Customers report substantial improvements in key metrics.",
		"Implementation time and complexity are reduced by up to 60%.",
		"The return on investment is typically realized within 6 months.",
		"Our approach has been validated by industry experts and analysts.",
		"Integration capabilities exceed industry standards.",
		"Customer satisfaction scores consistently exceed 90%.",
	},
	TypeAudience: {
		"These organizations face increasing pressure to modernize their operations.",
		"Decision-makers in this segment prioritize efficiency and reliability.",
		"The need for comprehensive solutions continues to grow.",
		"Budget constraints and resource limitations drive demand for efficient solutions.",
		"Regulatory compliance requirements add complexity to their operations.",
		"They seek partners who understand their unique challenges.",
		"Time-to-value is a critical factor in their decision-making process.",
		"Integration with existing systems is a key consideration.",
	},
	TypeMarket: {
		"Market growth is driven by increasing digital transformation initiatives.",
		"Industry analysts project significant expansion in coming years.",
		"Regulatory requirements continue to drive market demand.",
		"Technology adoption rates show strong upward trends.",
		"Organizations are increasing their investment in this sector.",
		"Market penetration opportunities remain substantial.",
		"Competitive dynamics favor innovative solutions.",
		"Global market conditions support continued growth.",
	},
	TypeCTA: {
		"Take the first step toward transforming your security posture.",
		"Join industry leaders who have already embraced this solution.",
		"Schedule a personalized demo to see the benefits firsthand.",
		"Our team of experts is ready to guide your implementation.",
		"Start your journey to enhanced security today.",
		"Limited-time implementation support available.",
		"Join our growing community of satisfied customers.",
		"Experience the difference our solution can make.",
	},
}

// intelligentExpansions backs ExpandIntelligently, which targets longer body
// sections. Unknown types fall back to the solution list.
var intelligentExpansions = map[string][]string{
	TypeProblem: {
		"This poses significant risks to business operations and data security.",
		"Organizations must address this challenge proactively to maintain compliance.",
		"The impact on overall security posture is substantial and growing.",
		"Traditional approaches have proven insufficient in today's threat landscape.",
	},
	TypeSolution: {
		"Our solution delivers comprehensive protection across the entire attack surface.",
		"The platform integrates seamlessly with existing security infrastructure.",
		"Advanced analytics provide real-time insights and actionable intelligence.",
		"Automated responses minimize manual intervention and reduce response times.",
	},
	TypeFeature: {
		"This capability enhances operational efficiency while reducing complexity.",
		"Users benefit from streamlined workflows and improved productivity.",
		"Integration capabilities maximize value across the security ecosystem.",
		"Regular updates ensure continued effectiveness against emerging threats.",
	},
	TypeMarket: {
		"Market trends indicate strong growth potential in the security sector.",
		"Industry adoption continues to accelerate as threats evolve.",
		"Regulatory requirements drive increased demand for comprehensive solutions.",
		"Digital transformation initiatives fuel expansion across all verticals.",
	},
}

// additionalBullets provides synthesized bullets per detected content type,
// used when a slide has too few points after deduplication.
var additionalBullets = map[string][]string{
	TypeMarket: {
		"Growing demand for integrated security solutions",
		"Increasing adoption of cloud-based security platforms",
		"Rising focus on regulatory compliance and data protection",
		"Expanding threat landscape driving security investments",
	},
	TypeSolution: {
		"Advanced threat detection and response capabilities",
		"Seamless integration with existing security tools",
		"Automated security workflows and orchestration",
		"Real-time monitoring and alerting system",
	},
	TypeChallenge: {
		"Need for comprehensive security visibility",
		"Resource constraints in security operations",
		"Complex compliance requirements management",
		"Rapid response to emerging threats",
	},
	TypeGeneral: {
		"Enhanced operational efficiency and productivity",
		"Improved security posture and risk management",
		"Streamlined compliance and reporting processes",
		"Cost-effective security management",
	},
}

// Expand pads text with unused boilerplate sentences for its content type
// until the type threshold is reached or the candidates run out. The
// product-name placeholder is substituted when productName is set.
func Expand(text, contentType, productName string) string {
	clean := strings.TrimSpace(text)
	clean = ReplaceProductName(clean, productName)

	candidates, ok := expansions[contentType]
	if !ok {
		return clean
	}
	threshold := expandThreshold(contentType)
	for _, sentence := range candidates {
		if len(clean) >= threshold {
			break
		}
		clean = appendSentence(clean, sentence)
	}
	return clean
}

// ExpandIntelligently is the long-form variant used for main body sections.
func ExpandIntelligently(text, contentType string) string {
	if text == "" {
		return text
	}
	clean := strings.TrimSpace(text)
	candidates, ok := intelligentExpansions[contentType]
	if !ok {
		candidates = intelligentExpansions[TypeSolution]
	}
	for _, sentence := range candidates {
		if len(clean) >= intelligentThreshold {
			break
		}
		clean = appendSentence(clean, sentence)
	}
	return clean
}

func appendSentence(text, sentence string) string {
	if text == "" {
		return sentence
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text + " " + sentence
}

// DetectContentType classifies a bullet list so synthesized bullets match
// the surrounding content.
func DetectContentType(bullets []string) string {
	combined := strings.ToLower(strings.Join(bullets, " "))
	switch {
	case containsAny(combined, "market", "growth", "opportunity", "size"):
		return TypeMarket
	case containsAny(combined, "solution", "feature", "platform", "product"):
		return TypeSolution
	case containsAny(combined, "challenge", "need", "require", "face"):
		return TypeChallenge
	default:
		return TypeGeneral
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// FillBullets appends synthesized bullets (skipping semantic duplicates)
// until the list reaches min entries or the candidate list for the detected
// content type is exhausted. Candidates are consumed in declaration order so
// output is deterministic.
func FillBullets(bullets []string, min int) []string {
	if len(bullets) >= min {
		return bullets
	}
	seen := make(map[string]struct{}, len(bullets))
	for _, b := range bullets {
		seen[ComparisonKey(b)] = struct{}{}
	}
	for _, candidate := range additionalBullets[DetectContentType(bullets)] {
		if len(bullets) >= min {
			break
		}
		key := ComparisonKey(candidate)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		bullets = append(bullets, candidate)
	}
	return bullets
}
