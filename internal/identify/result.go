package identify

const (
	defaultNgramSize   = 3
	defaultProfileSize = 300
	defaultTopN        = 3

	// topFeatureCount limits the explanatory feature list.
	topFeatureCount = 5
)

// Options holds the scoring parameters shared by all identifiers.
type Options struct {
	// NgramSize is the character window width. Default 3.
	NgramSize int
	// ProfileSize caps profile length and doubles as the out-of-place
	// penalty for symbols absent from a reference. Default 300.
	ProfileSize int
	// TopN limits the reported score distribution. Default 3.
	TopN int
}

func (o Options) withDefaults() Options {
	if o.NgramSize <= 0 {
		o.NgramSize = defaultNgramSize
	}
	if o.ProfileSize <= 0 {
		o.ProfileSize = defaultProfileSize
	}
	if o.TopN <= 0 {
		o.TopN = defaultTopN
	}
	return o
}

// LanguageScore pairs a language code with its distance score. Lower is a
// better match.
type LanguageScore struct {
	Lang  string  `json:"lang"`
	Score float64 `json:"score"`
}

// Result describes a successful identification.
type Result struct {
	// Prediction is the language code with the lowest distance.
	Prediction string `json:"prediction"`
	// Distribution lists the best-scoring languages in ascending score
	// order, limited to the configured top N.
	Distribution []LanguageScore `json:"distribution"`
	// TopFeatures are the input n-grams most influential for the
	// prediction: those shared with the winning reference profile, ordered
	// by their rank in that profile.
	TopFeatures []string `json:"top_features"`
}

// Identifier is the shared capability implemented by the simple and hybrid
// scorers: map a text to a scored language prediction.
type Identifier interface {
	Identify(text string) (Result, error)
}
