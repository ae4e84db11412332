package runtime

// Bindable widgets receive app services when attached to a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when detached.
type Unbindable interface {
	Unbind()
}

// Lifecycle is implemented by widgets that need mount/unmount hooks.
type Lifecycle interface {
	Mount()
	Unmount()
}

// AttachTree binds services to and then mounts every widget under root,
// parents before children.
func AttachTree(root Widget, services Services) {
	walkTree(root, true, func(w Widget) {
		if b, ok := w.(Bindable); ok && !services.isZero() {
			b.Bind(services)
		}
	})
	walkTree(root, true, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
	})
}

// DetachTree unmounts and then unbinds every widget under root,
// children before parents.
func DetachTree(root Widget) {
	walkTree(root, false, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
	})
	walkTree(root, false, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

func walkTree(w Widget, preorder bool, fn func(Widget)) {
	if w == nil {
		return
	}
	if preorder {
		fn(w)
	}
	if children, ok := w.(ChildProvider); ok {
		for _, child := range children.ChildWidgets() {
			walkTree(child, preorder, fn)
		}
	}
	if !preorder {
		fn(w)
	}
}
