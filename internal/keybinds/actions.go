package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal   Context = "global"   // Available everywhere
	ContextEditor   Context = "editor"   // Typing in the active tab
	ContextRename   Context = "rename"   // Inline tab title editing
	ContextConfirm  Context = "confirm"  // Confirmation dialogs
	ContextSwitcher Context = "switcher" // Fuzzy tab switcher
	ContextHelp     Context = "help"     // Help viewer
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Save and quit
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)
	ActionOpenHelp  Action = "open_help"  // Open help viewer

	// Tab actions (editor)
	ActionNewTab         Action = "new_tab"          // Create and activate a tab
	ActionCloseTab       Action = "close_tab"        // Close the active tab (with confirm)
	ActionNextTab        Action = "next_tab"         // Activate the tab to the right
	ActionPrevTab        Action = "prev_tab"         // Activate the tab to the left
	ActionRenameTab      Action = "rename_tab"       // Edit the active tab title
	ActionOpenSwitcher   Action = "open_switcher"    // Fuzzy find a tab by title
	ActionToggleDarkMode Action = "toggle_dark_mode" // Switch light/dark styles
	ActionExportTab      Action = "export_tab"       // Write the active tab to a file
	ActionCopyTab        Action = "copy_tab"         // Copy the active tab to the clipboard
	ActionClearText      Action = "clear_text"       // Empty the editor
	ActionUndo           Action = "undo"             // Step back through the tab's edits
	ActionRedo           Action = "redo"             // Reapply an undone edit

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move up one item
	ActionNavigateDown Action = "navigate_down" // Move down one item
	ActionPageUp       Action = "page_up"       // Move up one page
	ActionPageDown     Action = "page_down"     // Move down one page

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input

	// Modal actions
	ActionCloseModal Action = "close_modal" // Close current modal
	ActionConfirm    Action = "confirm"     // Confirm action (y/Y)
	ActionCancel     Action = "cancel"      // Cancel action (n/N)
)

// AllContexts lists the contexts in display order
func AllContexts() []Context {
	return []Context{
		ContextGlobal,
		ContextEditor,
		ContextRename,
		ContextConfirm,
		ContextSwitcher,
		ContextHelp,
	}
}

// actionDescriptions is used by the help viewer and by ValidateAction
var actionDescriptions = map[Action]string{
	ActionQuit:           "Save and quit",
	ActionQuitForce:      "Quit immediately",
	ActionOpenHelp:       "Show keybindings",
	ActionNewTab:         "New tab",
	ActionCloseTab:       "Close tab",
	ActionNextTab:        "Next tab",
	ActionPrevTab:        "Previous tab",
	ActionRenameTab:      "Rename tab",
	ActionOpenSwitcher:   "Find tab",
	ActionToggleDarkMode: "Toggle dark mode",
	ActionExportTab:      "Export tab to file",
	ActionCopyTab:        "Copy tab to clipboard",
	ActionClearText:      "Clear text",
	ActionUndo:           "Undo",
	ActionRedo:           "Redo",
	ActionNavigateUp:     "Up",
	ActionNavigateDown:   "Down",
	ActionPageUp:         "Page up",
	ActionPageDown:       "Page down",
	ActionTextSubmit:     "Submit",
	ActionTextCancel:     "Cancel",
	ActionCloseModal:     "Close",
	ActionConfirm:        "Confirm",
	ActionCancel:         "Cancel",
}

// Describe returns a short label for an action
func Describe(action Action) string {
	if d, ok := actionDescriptions[action]; ok {
		return d
	}
	return string(action)
}

// IsKnownAction reports whether action is handled by editpad
func IsKnownAction(action Action) bool {
	_, ok := actionDescriptions[action]
	return ok
}
