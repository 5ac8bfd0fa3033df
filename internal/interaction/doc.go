// Package interaction finds the closest interactable object around an anchor
// point on a fixed cadence and drives the on-screen interaction prompt.
//
// A Scanner is a component. Attach it to the player, point its Anchor at the
// object whose position defines the scan center, and give it a PromptDisplay.
// Every Interval it queries the world for overlapping objects, keeps the ones
// exposing the Interactable capability and selects the closest one. Player
// input calls Interact to forward to that target.
package interaction
