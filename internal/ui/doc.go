// Package ui provides the Bubble Tea terminal front end for deskset.
//
// The Model never polls: each utility's subscriber forwards committed
// snapshots into the program as messages via Program.Send, so every commit
// — an arithmetic operation, a timer tick, a lifecycle transition —
// triggers exactly one re-render. Keyboard input is the only other message
// source; key bindings come from bubbles/key and the calculator operand
// buffer is a bubbles/textinput limited to numeric runes.
package ui
