package letterseg

// Flags tells a segmenter which affix variants it may generate.
// Flags are consulted on demand, every time a long run is finalized,
// and never cached across steps.
type Flags interface {
	AllowEnglishPrefix() bool
	AllowEnglishSuffix() bool
	AllowArabicPrefix() bool
	AllowArabicSuffix() bool
}

// Config is a plain implementation of Flags.
type Config struct {
	// EnglishPrefix enables prefix variants of long letter runs which are
	// not known to the dictionary.
	EnglishPrefix bool `json:"english_prefix"`

	// EnglishSuffix enables suffix variants of long letter runs.
	EnglishSuffix bool `json:"english_suffix"`

	// ArabicPrefix enables prefix variants of long digit runs.
	ArabicPrefix bool `json:"arabic_prefix"`

	// ArabicSuffix enables suffix variants of long digit runs.
	ArabicSuffix bool `json:"arabic_suffix"`
}

// DefaultConfig returns a Config with all affix variants enabled.
func DefaultConfig() Config {
	return Config{
		EnglishPrefix: true,
		EnglishSuffix: true,
		ArabicPrefix:  true,
		ArabicSuffix:  true,
	}
}

func (c Config) AllowEnglishPrefix() bool { return c.EnglishPrefix }
func (c Config) AllowEnglishSuffix() bool { return c.EnglishSuffix }
func (c Config) AllowArabicPrefix() bool  { return c.ArabicPrefix }
func (c Config) AllowArabicSuffix() bool  { return c.ArabicSuffix }
