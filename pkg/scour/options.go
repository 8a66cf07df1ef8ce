package scour

type options struct {
	cityCandidates []string
	cityCutoff     float64
	categories     []Category
}

// Option configures a Scour instance.
type Option func(*options)

// WithCityCandidates sets the canonical city names that near-miss spellings
// consolidate onto. Default: chicago, berwyn.
func WithCityCandidates(cities ...string) Option {
	return func(o *options) {
		o.cityCandidates = cities
	}
}

// WithCityCutoff sets the minimum similarity ratio for city consolidation,
// in [0, 1]. Below the cutoff a spelling is left untouched. Default: 0.8.
func WithCityCutoff(cutoff float64) Option {
	return func(o *options) {
		o.cityCutoff = cutoff
	}
}

// WithCategories replaces the built-in facility taxonomy. Categories are
// matched in order; the first whose keyword appears in the facility type
// wins.
func WithCategories(cats []Category) Option {
	return func(o *options) {
		o.categories = append([]Category(nil), cats...)
	}
}

func defaultOptions() options {
	return options{
		cityCandidates: []string{"chicago", "berwyn"},
		cityCutoff:     0.8,
	}
}
