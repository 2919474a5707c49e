package pages

// Option is one choice in a select or checkbox group. Value is what gets posted.
type Option struct {
	Value string
	Label string
}

var (
	SectorOptions = []Option{
		{"professional-services", "Professional services"},
		{"retail", "Retail & e-commerce"},
		{"hospitality", "Hospitality"},
		{"construction", "Construction & trades"},
		{"health", "Health & wellness"},
		{"technology", "Technology"},
		{"other", "Other"},
	}
	RegionOptions = []Option{
		{"north-america", "North America"},
		{"latin-america", "Latin America"},
		{"europe", "Europe"},
		{"other", "Other"},
	}
	TeamSizeOptions = []Option{
		{"1-10", "1-10"},
		{"11-50", "11-50"},
		{"51-200", "51-200"},
		{"200+", "200+"},
	}
	RevenueOptions = []Option{
		{"<1m", "Under $1M"},
		{"1m-5m", "$1M - $5M"},
		{"5m-20m", "$5M - $20M"},
		{"20m+", "Over $20M"},
	}
	TimingOptions = []Option{
		{"now", "As soon as possible"},
		{"this-quarter", "This quarter"},
		{"next-quarter", "Next quarter"},
		{"exploring", "Just exploring"},
	}
	GoalOptions = []Option{
		{"leads", "More qualified leads"},
		{"website", "A better website"},
		{"brand", "Brand & positioning"},
		{"operations", "Smoother operations"},
		{"pricing", "Pricing strategy"},
		{"hiring", "Hiring & team structure"},
	}
)
