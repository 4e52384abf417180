package config

const (
	defaultDataDir = "~/.local/share/encore"
	defaultLogDir  = "~/.local/share/encore/logs"

	defaultOCRBinary         = "tesseract"
	defaultOCRPageSegMode    = 6
	defaultOCRTimeoutSeconds = 120
	// Characters the recognition engine is asked to emit; everything the
	// normalizer and extractor can make use of.
	defaultOCRCharWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789:.&- "

	defaultDayStartHour       = 12
	defaultDayEndHour         = 6
	defaultSetMinutes         = 60
	defaultArriveEarlyMinutes = 15
	defaultMinOverlapMinutes  = 15
	defaultMaxWindowMinutes   = 60
	defaultMaxCandidates      = 8
	defaultDayPivotHour       = 8

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		OCR: OCR{
			Binary:         defaultOCRBinary,
			Languages:      []string{"eng"},
			PageSegMode:    defaultOCRPageSegMode,
			CharWhitelist:  defaultOCRCharWhitelist,
			TimeoutSeconds: defaultOCRTimeoutSeconds,
		},
		Festival: Festival{
			DayStartHour:       defaultDayStartHour,
			DayEndHour:         defaultDayEndHour,
			SetMinutes:         defaultSetMinutes,
			ArriveEarlyMinutes: defaultArriveEarlyMinutes,
			MinOverlapMinutes:  defaultMinOverlapMinutes,
			MaxWindowMinutes:   defaultMaxWindowMinutes,
			MaxCandidates:      defaultMaxCandidates,
			DayPivotHour:       defaultDayPivotHour,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
