package source

// Content is one refresh of a source's output. Running is the text the
// window scrolls; Prefix and Suffix are rendered around the window and
// never scroll through it.
type Content struct {
	Running string
	Prefix  string
	Suffix  string
}

// Source produces marquee content. Initial returns the first content and
// must succeed before any windowing begins. Poll returns fresh content
// and true when the source changed since the last call; sources that can
// never change return false forever.
//
// Errors from either operation are opaque to the engine: the driver
// decides whether to skip a tick or abort. The engine never retries.
type Source interface {
	Initial() (Content, error)
	Poll() (Content, bool, error)
}
