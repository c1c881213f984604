package domain

import "time"

// Category groups pages for contextual help
type Category string

const (
	CategoryIndex         Category = "index"
	CategoryContent       Category = "content"
	CategoryAIMenu        Category = "ai-menu"
	CategoryQuiz          Category = "quiz"
	CategorySettings      Category = "settings"
	CategoryTimeSensitive Category = "time-sensitive"
)

// PageKind is the category-specific view of a page. Each variant carries only
// the fields its category uses.
type PageKind interface {
	Category() Category
	ContentType() ContentType
}

// IndexPage is page 100
type IndexPage struct{}

// ContentPage is a plain single page of content
type ContentPage struct {
	Type   ContentType
	Source string
}

// TimeSensitivePage is news, sport, markets or weather content with a timestamp
type TimeSensitivePage struct {
	Type        ContentType
	Source      string
	LastUpdated time.Time
}

// MultiPageArticle is one page of a continuation chain
type MultiPageArticle struct {
	Type         ContentType
	Continuation Continuation
	LastUpdated  time.Time
}

// AIMenuPage is an AI page driven by single-digit choices
type AIMenuPage struct {
	ContextID string
	Options   []string
}

// QuizPage is a games page
type QuizPage struct {
	Options []string
}

// SettingsPage is a settings page
type SettingsPage struct{}

func (IndexPage) Category() Category { return CategoryIndex }
func (ContentPage) Category() Category { return CategoryContent }
func (TimeSensitivePage) Category() Category { return CategoryTimeSensitive }
func (MultiPageArticle) Category() Category { return CategoryContent }
func (AIMenuPage) Category() Category { return CategoryAIMenu }
func (QuizPage) Category() Category { return CategoryQuiz }
func (SettingsPage) Category() Category { return CategorySettings }
func (IndexPage) ContentType() ContentType { return ContentNone }
func (k ContentPage) ContentType() ContentType { return k.Type }
func (k TimeSensitivePage) ContentType() ContentType { return k.Type }
func (k MultiPageArticle) ContentType() ContentType { return k.Type }
func (AIMenuPage) ContentType() ContentType { return ContentAI }
func (QuizPage) ContentType() ContentType { return ContentGames }
func (SettingsPage) ContentType() ContentType { return ContentSettings }

// Classify selects the page kind from the id range and metadata
func Classify(p Page) PageKind {
	if p.ID == IndexPageID {
		return IndexPage{}
	}
	t := DetectContentType(p.ID)
	if p.Meta.Continuation != nil {
		return MultiPageArticle{Type: t, Continuation: *p.Meta.Continuation, LastUpdated: p.Meta.LastUpdated}
	}
	switch t {
	case ContentAI:
		return AIMenuPage{ContextID: p.Meta.AIContextID, Options: p.Meta.InputOptions}
	case ContentGames:
		return QuizPage{Options: p.Meta.InputOptions}
	case ContentSettings:
		return SettingsPage{}
	}
	if t.TimeSensitive() && !p.Meta.LastUpdated.IsZero() {
		return TimeSensitivePage{Type: t, Source: p.Meta.Source, LastUpdated: p.Meta.LastUpdated}
	}
	return ContentPage{Type: t, Source: p.Meta.Source}
}
