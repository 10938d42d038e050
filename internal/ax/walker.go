package ax

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Mode selects how each node is read.
type Mode int

const (
	// ModeCurated reads CuratedAttributes and normalizes values to text.
	ModeCurated Mode = iota
	// ModeFull reads every attribute the node reports, raw.
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeCurated:
		return "curated"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a flag or config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "curated":
		return ModeCurated, nil
	case "full", "all":
		return ModeFull, nil
	default:
		return ModeCurated, fmt.Errorf("unknown mode: %q (expected curated or full)", s)
	}
}

// DefaultMaxDepth is the recursion limit used when none is configured.
const DefaultMaxDepth = 10

// Options configures a traversal.
type Options struct {
	Mode     Mode
	MaxDepth int // nodes at this depth are emitted but not descended into
}

// DefaultOptions returns curated mode with DefaultMaxDepth.
func DefaultOptions() Options {
	return Options{Mode: ModeCurated, MaxDepth: DefaultMaxDepth}
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0, got %d", o.MaxDepth)
	}
	if o.Mode != ModeCurated && o.Mode != ModeFull {
		return fmt.Errorf("unknown mode: %s", o.Mode)
	}
	return nil
}

// Frame is one visited node: its depth below the root and its snapshot.
type Frame struct {
	Depth    int
	Snapshot Snapshot
}

// VisitFunc receives frames in depth-first pre-order. Returning an error
// stops the walk.
type VisitFunc func(Frame) error

// Walker performs a bounded depth-first traversal.
type Walker struct {
	svc    Service
	reader *Reader
	opts   Options
	logger *zap.Logger
}

// NewWalker returns a Walker over svc. A nil logger disables logging.
func NewWalker(svc Service, opts Options, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		svc:    svc,
		reader: NewReader(svc, logger),
		opts:   opts,
		logger: logger,
	}
}

// Walk visits root and its descendants down to the configured depth.
// Per-node query failures are absorbed; only an error from visit is returned.
func (w *Walker) Walk(root Node, visit VisitFunc) error {
	return w.walk(root, 0, visit)
}

func (w *Walker) walk(n Node, depth int, visit VisitFunc) error {
	if err := visit(Frame{Depth: depth, Snapshot: w.reader.Read(n, w.opts.Mode)}); err != nil {
		return err
	}
	if depth >= w.opts.MaxDepth {
		return nil
	}
	for _, child := range w.children(n) {
		if err := w.walk(child, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}

// children returns the node's AXChildren, or nil if the query fails or the
// value is not an element list.
func (w *Walker) children(n Node) []Node {
	v, err := w.svc.AttributeValue(n, AttrChildren)
	if err != nil {
		w.logger.Debug("children unavailable", zap.Error(err))
		return nil
	}
	list, ok := v.(NodeList)
	if !ok {
		w.logger.Debug("children unavailable",
			zap.Error(fmt.Errorf("%w: %s is %T", ErrInvalidNodeHandle, AttrChildren, v)))
		return nil
	}
	return list
}
