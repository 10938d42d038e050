package ax

import "go.uber.org/zap"

// Reader extracts attribute snapshots from nodes.
type Reader struct {
	svc    Service
	logger *zap.Logger
}

// NewReader returns a Reader querying svc. A nil logger disables logging.
func NewReader(svc Service, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{svc: svc, logger: logger}
}

// ReadCurated queries each of CuratedAttributes. Failed queries are left out
// of the result. Text and Number values are kept as is; everything else is
// converted to Text holding its display form.
func (r *Reader) ReadCurated(n Node) Snapshot {
	snap := make(Snapshot, len(CuratedAttributes))
	for _, name := range CuratedAttributes {
		v, ok := r.read(n, name)
		if !ok {
			continue
		}
		switch v := v.(type) {
		case Text, Number:
			snap[name] = v
		default:
			snap[name] = Text(Display(v))
		}
	}
	return snap
}

// ReadAll queries every attribute the node reports and stores raw values.
// If the name list itself cannot be read the snapshot is empty.
func (r *Reader) ReadAll(n Node) Snapshot {
	names, err := r.svc.AttributeNames(n)
	if err != nil {
		r.logger.Debug("attribute names unavailable", zap.Error(err))
		return Snapshot{}
	}
	snap := make(Snapshot, len(names))
	for _, name := range names {
		if v, ok := r.read(n, name); ok {
			snap[name] = v
		}
	}
	return snap
}

// Read returns the snapshot for n in the given mode.
func (r *Reader) Read(n Node, mode Mode) Snapshot {
	if mode == ModeFull {
		return r.ReadAll(n)
	}
	return r.ReadCurated(n)
}

func (r *Reader) read(n Node, name string) (Value, bool) {
	v, err := r.svc.AttributeValue(n, name)
	if err != nil {
		r.logger.Debug("attribute query failed", zap.String("attribute", name), zap.Error(err))
		return nil, false
	}
	if v == nil {
		return nil, false
	}
	return v, true
}
