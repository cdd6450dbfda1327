/*
Package tui implements the editpad terminal interface using Bubble Tea.

# Architecture

The TUI follows the Elm Architecture pattern via Bubble Tea:
  - Model: application state (model.go)
  - Update: message handling (model.go, keys.go, mouse.go)
  - View: rendering (render.go, tabbar.go, modals.go)

The Model owns a session.Controller and never touches the store directly
except for the dark-mode preference. The editing surface is a bubbles
textarea wrapped by editorSurface so the controller can load and capture
documents.

# Screen Layout

	 Groceries × │ Meeting notes × │ + 
	<textarea>
	status bar

The first row is the tab bar. The tab bar layout is computed by a pure
function shared by rendering and mouse hit-testing, so what is drawn is
exactly what is clickable.

# Modes

  - ModeEditor: typing goes to the textarea; editor keybinds are checked first
  - ModeRename: inline title field in the tab bar (Enter or click elsewhere
    commits, Esc discards)
  - ModeConfirmClose: close confirmation modal
  - ModeSwitcher: fuzzy tab finder
  - ModeHelp: keybinding viewer

# Saving

Every real change to the textarea notifies a debounce.Scheduler. When the
quiet period elapses the scheduler posts saveDueMsg through Program.Send,
so the capture itself runs on the event loop like every other state change.
Switching tabs cancels the pending save because the switch already
captured the outgoing tab. Quitting cancels the timer and tears the
controller down, which writes the final state.

# Mouse

With mouse support enabled (the default), clicking a tab activates it,
a double click on the title starts an inline rename, clicking × asks to
close the tab and clicking + opens a new one.
*/
package tui
