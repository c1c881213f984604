package ui

import (
	"log"

	"teletext/internal/config"
	"teletext/internal/grid"
	"teletext/internal/indicators"
	"teletext/internal/pagelayout"
)

// NewLayout builds the page processor and composition options described by cfg
func NewLayout(cfg *config.Config, opts ...indicators.Option) (*pagelayout.Processor, pagelayout.Options) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	align, err := grid.ParseAlignment(cfg.Display.Alignment)
	if err != nil {
		log.Printf("ui: %v, using left", err)
	}

	opts = append([]indicators.Option{indicators.WithThresholds(cfg.Cache.Thresholds())}, opts...)
	processor := pagelayout.New(indicators.New(opts...))

	return processor, pagelayout.Options{
		Alignment:  align,
		FullScreen: cfg.Display.FullScreen,
	}
}
