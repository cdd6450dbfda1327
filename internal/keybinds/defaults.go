package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerEditorBindings(r)
	registerRenameBindings(r)
	registerConfirmBindings(r)
	registerSwitcherBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextGlobal, "f1", ActionOpenHelp)
}

// registerEditorBindings only uses modified or function keys so plain
// typing always reaches the text area
func registerEditorBindings(r *Registry) {
	r.Register(ContextEditor, "ctrl+t", ActionNewTab)
	r.Register(ContextEditor, "ctrl+w", ActionCloseTab)
	r.RegisterMultiple(ContextEditor, []string{"ctrl+pgdown", "alt+right"}, ActionNextTab)
	r.RegisterMultiple(ContextEditor, []string{"ctrl+pgup", "alt+left"}, ActionPrevTab)
	r.Register(ContextEditor, "f2", ActionRenameTab)
	r.Register(ContextEditor, "ctrl+p", ActionOpenSwitcher)
	r.Register(ContextEditor, "f3", ActionToggleDarkMode)
	r.Register(ContextEditor, "ctrl+s", ActionExportTab)
	r.Register(ContextEditor, "ctrl+y", ActionCopyTab)
	r.Register(ContextEditor, "ctrl+l", ActionClearText)
	r.Register(ContextEditor, "ctrl+z", ActionUndo)
	r.Register(ContextEditor, "ctrl+r", ActionRedo)
}

func registerRenameBindings(r *Registry) {
	r.Register(ContextRename, "enter", ActionTextSubmit)
	r.Register(ContextRename, "esc", ActionTextCancel)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc"}, ActionCancel)
}

func registerSwitcherBindings(r *Registry) {
	r.RegisterMultiple(ContextSwitcher, []string{"up", "ctrl+k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextSwitcher, []string{"down", "ctrl+j"}, ActionNavigateDown)
	r.Register(ContextSwitcher, "enter", ActionTextSubmit)
	r.Register(ContextSwitcher, "esc", ActionCloseModal)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
}
