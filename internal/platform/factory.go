package platform

import (
	"context"

	"github.com/inkwell-notes/inkwell/pkg/adapters/fs"
	"github.com/inkwell-notes/inkwell/pkg/core"
	"github.com/inkwell-notes/inkwell/pkg/gate"
)

// New wires a note Service rooted at the given storage root.
//
// An empty root resolves the platform default. The vault itself is the
// "Notes" subdirectory of the root; it is created on first use. The
// permission gate runs before the directory is touched, so a denied
// environment fails here with core.ErrPermissionDenied and no filesystem
// side effects.
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var err error
	if root == "" {
		root, err = DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	useTemp := o.forceTemp || (IsDevRun() && o.devSafety)
	vaultPath := ResolveVaultPath(root, useTemp)

	if o.logger != nil && useTemp && !o.forceTemp {
		o.logger.Warn("running in SAFE MODE (dev sandbox)", "original_root", root, "vault", vaultPath)
	}

	env := o.environment
	if env == nil {
		env = &gate.HostEnvironment{Root: vaultPath}
	}
	g := gate.New(env, o.logger)

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:      vaultPath,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
	}

	ctx := context.Background()
	if err := g.EnsureAccess(ctx); err != nil {
		return nil, err
	}
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	svcOpts := []core.ServiceOption{}
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithServiceLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}

	return core.NewService(repo, g, svcOpts...), nil
}
