package config

const (
	defaultProfilesDir       = "~/.local/share/langid/profiles"
	defaultCorpusDir         = "~/.local/share/langid/corpus"
	defaultDataDir           = "~/.local/share/langid"
	defaultLogDir            = "~/.local/share/langid/logs"
	defaultAPIBind           = "127.0.0.1:7391"
	defaultNgramSize         = 3
	defaultProfileSize       = 300
	defaultTopN              = 3
	defaultModel             = "simple"
	defaultAlpha             = 0.5
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultHistoryMaxEntries = 1000
)

func defaultLanguages() []string {
	return []string{"en", "de", "fr", "es", "it", "nl", "pt"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProfilesDir: defaultProfilesDir,
			CorpusDir:   defaultCorpusDir,
			DataDir:     defaultDataDir,
			LogDir:      defaultLogDir,
			APIBind:     defaultAPIBind,
		},
		Identify: Identify{
			NgramSize:    defaultNgramSize,
			ProfileSize:  defaultProfileSize,
			TopN:         defaultTopN,
			DefaultModel: defaultModel,
			Alpha:        defaultAlpha,
			Languages:    defaultLanguages(),
		},
		History: History{
			Enabled:    true,
			MaxEntries: defaultHistoryMaxEntries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
