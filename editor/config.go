package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	TabWidth     int // 0 means 4
	Style        Style
	KeyMap       KeyMap
	ReadOnly     bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	// Optional; copy, cut and paste are no-ops without it.
	Clipboard Clipboard

	// Called after every effective buffer change made through Update.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
