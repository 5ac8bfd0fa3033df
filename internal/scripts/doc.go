// Package scripts contains gameplay components that expose the interaction
// capability, plus the inventory they feed.
package scripts
