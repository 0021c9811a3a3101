package domain

// TechnicalBackground is the onboarding answer about the reader's experience.
type TechnicalBackground string

const (
	TechnicalBackgroundNone      TechnicalBackground = "none"
	TechnicalBackgroundSome      TechnicalBackground = "some"
	TechnicalBackgroundDeveloper TechnicalBackground = "developer"
	TechnicalBackgroundExpert    TechnicalBackground = "expert"
)

func (b TechnicalBackground) String() string { return string(b) }

func (b TechnicalBackground) IsValid() bool {
	switch b {
	case TechnicalBackgroundNone, TechnicalBackgroundSome, TechnicalBackgroundDeveloper, TechnicalBackgroundExpert:
		return true
	}
	return false
}

// LearningStyle is how the reader prefers material to be presented.
type LearningStyle string

const (
	LearningStyleVisual   LearningStyle = "visual"
	LearningStyleTextual  LearningStyle = "textual"
	LearningStyleExamples LearningStyle = "examples"
	LearningStyleHandsOn  LearningStyle = "hands_on"
)

func (s LearningStyle) String() string { return string(s) }

func (s LearningStyle) IsValid() bool {
	switch s {
	case LearningStyleVisual, LearningStyleTextual, LearningStyleExamples, LearningStyleHandsOn:
		return true
	}
	return false
}

// ReadingFrequency is how often the reader consults documentation.
type ReadingFrequency string

const (
	ReadingFrequencyRarely    ReadingFrequency = "rarely"
	ReadingFrequencySometimes ReadingFrequency = "sometimes"
	ReadingFrequencyOften     ReadingFrequency = "often"
	ReadingFrequencyDaily     ReadingFrequency = "daily"
)

func (f ReadingFrequency) String() string { return string(f) }

func (f ReadingFrequency) IsValid() bool {
	switch f {
	case ReadingFrequencyRarely, ReadingFrequencySometimes, ReadingFrequencyOften, ReadingFrequencyDaily:
		return true
	}
	return false
}

// ExplanationDepth is the preferred amount of detail.
type ExplanationDepth string

const (
	ExplanationDepthBrief    ExplanationDepth = "brief"
	ExplanationDepthBalanced ExplanationDepth = "balanced"
	ExplanationDepthDetailed ExplanationDepth = "detailed"
)

func (d ExplanationDepth) String() string { return string(d) }

func (d ExplanationDepth) IsValid() bool {
	switch d {
	case ExplanationDepthBrief, ExplanationDepthBalanced, ExplanationDepthDetailed:
		return true
	}
	return false
}

// SimplificationLevel selects the reading level of a reimagined page.
type SimplificationLevel string

const (
	SimplificationTechnical  SimplificationLevel = "technical"
	SimplificationStandard   SimplificationLevel = "standard"
	SimplificationSimplified SimplificationLevel = "simplified"
	SimplificationBeginner   SimplificationLevel = "beginner"
	SimplificationNoob       SimplificationLevel = "noob"
)

func (l SimplificationLevel) String() string { return string(l) }

func (l SimplificationLevel) IsValid() bool {
	switch l {
	case SimplificationTechnical, SimplificationStandard, SimplificationSimplified,
		SimplificationBeginner, SimplificationNoob:
		return true
	}
	return false
}

// RewriteMode is the mode requested by the reimagine endpoint.
type RewriteMode string

const (
	RewriteModeSimple    RewriteMode = "simple"
	RewriteModeTechnical RewriteMode = "technical"
	RewriteModeCustom    RewriteMode = "custom"
)

func (m RewriteMode) String() string { return string(m) }

func (m RewriteMode) IsValid() bool {
	switch m {
	case RewriteModeSimple, RewriteModeTechnical, RewriteModeCustom:
		return true
	}
	return false
}

// ThemeFont is the font family of a published project.
type ThemeFont string

const (
	ThemeFontInter  ThemeFont = "inter"
	ThemeFontSerif  ThemeFont = "serif"
	ThemeFontMono   ThemeFont = "mono"
	ThemeFontSystem ThemeFont = "system"
)

func (f ThemeFont) String() string { return string(f) }

func (f ThemeFont) IsValid() bool {
	switch f {
	case ThemeFontInter, ThemeFontSerif, ThemeFontMono, ThemeFontSystem:
		return true
	}
	return false
}
