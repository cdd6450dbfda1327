/*
Package types defines the data structures shared across editpad.

# Tab

Tab is the unit of persistence: one text document with an opaque unique id,
a title, the serialized content and a flag telling whether the title was set
by hand.

	{
	  "id": "0b6f7c1e-2f7a-4d5b-9b1e-1c2d3e4f5a6b",
	  "title": "Shopping list",
	  "content": "eggs\nmilk",
	  "titleIsManual": false
	}

The JSON field names are part of the persisted layout and must not change
without bumping the storage key (see package store).

# Titles

  - DefaultTitle is used whenever a title would otherwise be empty
  - MaxManualTitle bounds titles typed by the user
  - MaxAutoTitle bounds titles derived from the first line of content,
    followed by Ellipsis when truncated
*/
package types
