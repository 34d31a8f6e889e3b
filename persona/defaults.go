package persona

import "deckgenie/content"

// defaultContent carries the fallback slide content used when generated
// content is missing or incomplete. Only the slide types with meaningful
// fallbacks appear; the merger leaves other types alone.
var defaultContent = map[string]map[string]*content.SlideContent{
	Technical: {
		content.SlideProblem: {
			Title: "Technical Challenges",
			Bullets: content.Items(
				"Complex integration requirements with legacy systems",
				"Scalability limitations in current architecture",
				"Manual deployment and configuration processes",
				"Limited visibility into system performance metrics",
				"Technical debt from outdated infrastructure",
				"Resource-intensive maintenance procedures",
			),
		},
		content.SlideSolution: {
			Title:       "Technical Solution Architecture",
			Description: "Our solution leverages modern microservices architecture with containerized deployments for optimal scalability and maintainability.",
			Features: content.Items(
				"Containerized microservices deployment",
				"RESTful API integration capabilities",
				"Automated CI/CD pipeline integration",
				"Real-time monitoring and logging",
				"Horizontal scaling with Kubernetes",
			),
		},
		content.SlideAdvantage: {
			Title: "Technical Advantages",
			Bullets: content.Items(
				"99.99% system availability with redundant architecture",
				"Sub-millisecond response times for API endpoints",
				"Zero-downtime deployments with blue-green strategy",
				"Comprehensive API documentation and SDKs",
				"Advanced debugging and monitoring tools",
			),
		},
		content.SlideCTA: {
			Title:       "Ready to Enhance Your Technical Infrastructure?",
			CTAText:     "Schedule a technical deep-dive session today",
			ContactInfo: "Contact our solutions architects to begin",
		},
	},
	Executive: {
		content.SlideProblem: {
			Title: "Strategic Business Challenges",
			Bullets: content.Items(
				"Increasing operational costs impacting bottom line",
				"Market share erosion from digital competitors",
				"Risk exposure from legacy systems",
				"Inefficient resource allocation",
				"Compliance and regulatory pressures",
				"Limited business agility and innovation",
			),
		},
		content.SlideSolution: {
			Title:       "Strategic Business Solution",
			Description: "Our enterprise solution delivers measurable ROI through operational efficiency, risk reduction, and enhanced business capabilities.",
			Features: content.Items(
				"Comprehensive business intelligence dashboard",
				"Executive-level reporting and analytics",
				"Strategic resource optimization",
				"Risk management framework",
				"Compliance automation suite",
			),
		},
		content.SlideAdvantage: {
			Title: "Business Impact & ROI",
			Bullets: content.Items(
				"30% reduction in operational costs",
				"40% improvement in resource utilization",
				"60% faster time-to-market for new initiatives",
				"25% increase in customer satisfaction",
				"Demonstrated ROI within 6 months",
			),
		},
		content.SlideCTA: {
			Title:       "Ready to Drive Business Growth?",
			CTAText:     "Transform your business today",
			ContactInfo: "Contact our executive team to discuss your goals",
		},
	},
	Business: {
		content.SlideProblem: {
			Title: "Business Operations Challenges",
			Bullets: content.Items(
				"Inefficient workflow processes causing delays",
				"Data silos limiting business insights",
				"Manual reporting consuming valuable time",
				"Inconsistent customer experience",
				"Resource allocation inefficiencies",
				"Limited scalability for growth",
			),
		},
		content.SlideSolution: {
			Title:       "Business Process Solution",
			Description: "Our solution streamlines operations, automates workflows, and provides actionable insights for better business decisions.",
			Features: content.Items(
				"Automated workflow management",
				"Intuitive business process designer",
				"Real-time performance analytics",
				"Customizable reporting dashboard",
				"Integration with existing tools",
			),
		},
		content.SlideAdvantage: {
			Title: "Operational Benefits",
			Bullets: content.Items(
				"Streamlined business processes",
				"Enhanced operational visibility",
				"Improved team collaboration",
				"Reduced manual workload",
				"Better resource utilization",
			),
		},
		content.SlideCTA: {
			Title:       "Ready to Streamline Your Operations?",
			CTAText:     "Start optimizing your business processes",
			ContactInfo: "Contact us to begin your transformation",
		},
	},
}

// DefaultContent returns deep copies of the fallback slides for a persona,
// so callers can mutate the result freely.
func DefaultContent(name string) map[string]*content.SlideContent {
	src := defaultContent[Normalize(name)]
	out := make(map[string]*content.SlideContent, len(src))
	for slideType, c := range src {
		out[slideType] = c.Clone()
	}
	return out
}
