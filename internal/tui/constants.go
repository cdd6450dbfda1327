package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Screen rows outside the editor
	TabBarHeight    = 1
	StatusBarHeight = 1

	// Tab bar cells
	MaxTabTitleWidth = 24 // Display columns before a title is cut with "…"
	MinRenameWidth   = 12 // Width of the inline rename field

	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMargin       = 6  // Standard horizontal margin (m.width - 6)
	ModalHeightMarginSmall = 2  // Small vertical margin (m.height - 2)
	ModalMaxWidth          = 72 // Confirm and switcher modals never grow wider

	// Viewport Padding and Borders
	ViewportPaddingHorizontal = 4 // Horizontal padding (left + right)

	// Modal Content Calculations
	ModalOverheadLines   = 6 // Title (2) + padding (2) + border (2)
	ModalOverheadMinimal = 4 // Border + title for minimal modals
	ModalFooterLines     = 2 // Footer + blank line

	// Switcher
	SwitcherMaxResults = 10

	// MaxEditorLines is the textarea's own line cap. Longer tabs load
	// read-only.
	MaxEditorLines = 10000

	// Undo
	UndoLimit = 100 // Snapshots kept per tab
)

const (
	// DoubleClickWindow is the longest gap between two presses on the same
	// tab title that still counts as a double click
	DoubleClickWindow = 400 * time.Millisecond

	// StatusTimeout clears status and error messages
	StatusTimeout = 3 * time.Second

	// UndoMergeWindow groups edits made this close together into one undo
	// step
	UndoMergeWindow = time.Second
)
