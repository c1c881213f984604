package domain

// ContentType is the editorial section a page belongs to
type ContentType string

const (
	ContentNone     ContentType = ""
	ContentNews     ContentType = "NEWS"
	ContentSport    ContentType = "SPORT"
	ContentMarkets  ContentType = "MARKETS"
	ContentAI       ContentType = "AI"
	ContentGames    ContentType = "GAMES"
	ContentWeather  ContentType = "WEATHER"
	ContentSettings ContentType = "SETTINGS"
	ContentDev      ContentType = "DEV"
)

// SemanticColor is a teletext display color
type SemanticColor string

const (
	SemanticRed     SemanticColor = "red"
	SemanticGreen   SemanticColor = "green"
	SemanticYellow  SemanticColor = "yellow"
	SemanticBlue    SemanticColor = "blue"
	SemanticMagenta SemanticColor = "magenta"
	SemanticCyan    SemanticColor = "cyan"
	SemanticWhite   SemanticColor = "white"
)

// ContentStyle is the fixed presentation of a content type
type ContentStyle struct {
	Icon  string
	Color SemanticColor
}

type contentRange struct {
	lo, hi int
	t      ContentType
}

// Order matters: the weather band sits inside the markets band and must win.
var contentRanges = []contentRange{
	{200, 299, ContentNews},
	{300, 399, ContentSport},
	{450, 459, ContentWeather},
	{400, 499, ContentMarkets},
	{500, 599, ContentAI},
	{600, 699, ContentGames},
	{700, 799, ContentSettings},
	{800, 899, ContentDev},
}

var contentStyles = map[ContentType]ContentStyle{
	ContentNews:     {Icon: "📰", Color: SemanticRed},
	ContentSport:    {Icon: "⚽", Color: SemanticGreen},
	ContentMarkets:  {Icon: "📈", Color: SemanticYellow},
	ContentAI:       {Icon: "🤖", Color: SemanticCyan},
	ContentGames:    {Icon: "🎮", Color: SemanticMagenta},
	ContentWeather:  {Icon: "☀", Color: SemanticBlue},
	ContentSettings: {Icon: "⚙", Color: SemanticWhite},
	ContentDev:      {Icon: "🔧", Color: SemanticYellow},
}

// DetectContentType maps a page id to its content type by numeric range
func DetectContentType(id string) ContentType {
	n := BaseNumber(id)
	for _, r := range contentRanges {
		if n >= r.lo && n <= r.hi {
			return r.t
		}
	}
	return ContentNone
}

// Style returns the icon and color of a content type
func (t ContentType) Style() (ContentStyle, bool) {
	s, ok := contentStyles[t]
	return s, ok
}

// TimeSensitive reports whether pages of this type carry a freshness badge
func (t ContentType) TimeSensitive() bool {
	switch t {
	case ContentNews, ContentSport, ContentMarkets, ContentWeather:
		return true
	}
	return false
}
