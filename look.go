package look

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/look/element"
	"github.com/npillmayer/look/interaction"
	"github.com/npillmayer/look/resolve"
	"github.com/npillmayer/look/style"
)

// Component bundles the per-owner pieces of the styling machinery: the
// interaction state store, the listener registry and the resolution
// engine. Hosts create one Component per owning component instance
// (at mount time) and call Teardown when the owner unmounts.
type Component struct {
	store    *interaction.Store
	registry *interaction.Registry
	resolver *resolve.Resolver
}

// NewComponent creates the styling machinery for one owner. For the
// available options see package resolve.
func NewComponent(owner resolve.Owner, table style.Table, opts ...resolve.Option) *Component {
	store := interaction.NewStore()
	registry := interaction.NewRegistry()
	return &Component{
		store:    store,
		registry: registry,
		resolver: resolve.New(owner, table, store, registry, opts...),
	}
}

// Resolve resolves the look descriptors of an element tree, returning a
// replacement tree with per-node styles computed. The input tree is not
// modified.
func (c *Component) Resolve(node *element.Node) *element.Node {
	return c.resolver.Resolve(node)
}

// Store returns the owner's interaction state store.
func (c *Component) Store() *interaction.Store {
	return c.store
}

// Registry returns the owner's listener registry.
func (c *Component) Registry() *interaction.Registry {
	return c.registry
}

// Attach installs the active-release sweep on the host's global
// pointer-release signal. Calling it eagerly at mount time is preferred
// over the engine's attach-on-first-use fallback.
func (c *Component) Attach(notifier element.ReleaseNotifier) {
	c.store.Attach(notifier)
}

// Teardown releases the owner's styling resources. It must be called when
// the owner unmounts; afterwards no release callback of this component
// remains subscribed with the host.
func (c *Component) Teardown() {
	tracer().Debugf("tearing down styling component")
	c.store.Detach()
}
