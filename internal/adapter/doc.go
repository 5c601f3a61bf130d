// Package adapter exposes the store and transform contracts to a foreign
// callback-based protocol engine.
//
// Such engines expect free functions taking an opaque handle and returning
// integer status codes rather than method calls on an interface value. The
// Registry maps handles to bound store/transform pairs and forwards each
// call, collapsing Go errors into the engine's status codes. No persistence
// logic lives here; it is boundary translation only.
package adapter
