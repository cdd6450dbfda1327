/*
Package keybinds provides customizable keyboard binding management.

# Overview

Bindings are grouped by context. A key is looked up in the current context
first and then in the global context, so a context binding shadows a
global one.

Contexts:
  - global: available everywhere (quit, help)
  - editor: typing in the active tab (tab management, export, dark mode)
  - rename: inline tab title editing
  - confirm: the close confirmation dialog
  - switcher: the fuzzy tab switcher
  - help: the keybinding viewer

Editor bindings only use modified or function keys; every other key is
handed to the text area.

# Configuration File Format

~/.editpad/keybinds.json maps actions to comma separated keys per context.
Comments and trailing commas are allowed:

	{
	  // open a tab with ctrl+n instead of ctrl+t
	  "editor": {
	    "new_tab": "ctrl+n",
	    "close_tab": "ctrl+w,ctrl+f4",
	  },
	  "confirm": {
	    "confirm": "y,enter"
	  }
	}

An action listed in a section replaces all of its default keys in that
section. Run "editpad keybinds init" to write the defaults and
"editpad keybinds check" to validate a file.

# Validation

Validator reports keys assigned to two actions in one context and unknown
actions as errors; rebinding ctrl+c and shadowing a global key are
warnings.
*/
package keybinds
