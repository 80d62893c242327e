package tui

// keyHint pairs a literal key with the catalog key of its description;
// descriptions resolve through the active language at render time.
type keyHint struct {
	key     string
	descKey string
}

var formHints = []keyHint{
	{"enter", "action.assess"},
	{"ctrl+s", "action.save"},
	{"ctrl+r", "action.report"},
	{"ctrl+n", "action.new"},
	{"↑/↓", "action.fields"},
	{"space", "action.toggle"},
	{"tab", "action.views"},
	{"ctrl+l", "action.language"},
	{"ctrl+c", "action.quit"},
}

var listHints = []keyHint{
	{"↑/↓", "action.scroll"},
	{"tab", "action.views"},
	{"ctrl+l", "action.language"},
	{"q", "action.quit"},
}

var plainHints = []keyHint{
	{"tab", "action.views"},
	{"ctrl+l", "action.language"},
	{"q", "action.quit"},
}

func hintsFor(v viewState) []keyHint {
	switch v {
	case viewForm:
		return formHints
	case viewHistory:
		return listHints
	default:
		return plainHints
	}
}
