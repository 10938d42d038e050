package ax

import (
	"fmt"

	"go.uber.org/zap"
)

// Inspector is the entry point for a traversal: it checks permission,
// resolves the target and walks its tree. An Inspector holds no state between
// calls; use one per goroutine.
type Inspector struct {
	trust    TrustChecker
	svc      Service
	resolver Resolver
	opts     Options
	logger   *zap.Logger
	gated    func()
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithLogger sets the logger used for absorbed failures.
func WithLogger(logger *zap.Logger) InspectorOption {
	return func(in *Inspector) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithAfterPermission registers fn to run once permission is granted and
// before the target is resolved.
func WithAfterPermission(fn func()) InspectorOption {
	return func(in *Inspector) { in.gated = fn }
}

// NewInspector returns an Inspector. resolver may be nil if only
// InspectNode is used.
func NewInspector(trust TrustChecker, svc Service, resolver Resolver, opts Options, options ...InspectorOption) (*Inspector, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	in := &Inspector{
		trust:    trust,
		svc:      svc,
		resolver: resolver,
		opts:     opts,
		logger:   zap.NewNop(),
	}
	for _, o := range options {
		o(in)
	}
	return in, nil
}

// Inspect resolves target and walks its accessibility tree, calling visit for
// each node. Permission is checked before anything else.
func (in *Inspector) Inspect(target Target, visit VisitFunc) (*Application, error) {
	app, err := in.resolve(target)
	if err != nil {
		return nil, err
	}
	in.logger.Debug("inspecting",
		zap.String("app", app.Name),
		zap.Int("pid", app.PID),
		zap.Stringer("mode", in.opts.Mode),
		zap.Int("max_depth", in.opts.MaxDepth))
	if err := NewWalker(in.svc, in.opts, in.logger).Walk(app.Root, visit); err != nil {
		return app, err
	}
	return app, nil
}

// InspectNode walks the tree below root after checking permission.
func (in *Inspector) InspectNode(root Node, visit VisitFunc) error {
	if err := CheckPermission(in.trust); err != nil {
		return err
	}
	return NewWalker(in.svc, in.opts, in.logger).Walk(root, visit)
}

// ReadRoot resolves target and returns the full snapshot of its root element.
func (in *Inspector) ReadRoot(target Target) (*Application, Snapshot, error) {
	app, err := in.resolve(target)
	if err != nil {
		return nil, nil, err
	}
	return app, NewReader(in.svc, in.logger).ReadAll(app.Root), nil
}

func (in *Inspector) resolve(target Target) (*Application, error) {
	if err := CheckPermission(in.trust); err != nil {
		return nil, err
	}
	if in.gated != nil {
		in.gated()
	}
	if in.resolver == nil {
		return nil, fmt.Errorf("no application resolver configured")
	}
	app, err := target.Resolve(in.resolver)
	if err != nil {
		return nil, err
	}
	if app == nil || app.Root == nil {
		return nil, &NotFoundError{Name: target.String()}
	}
	return app, nil
}
