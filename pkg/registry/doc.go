// Package registry lets independently compiled packages register
// implementations of a plug-in contract from their init functions, and
// lets any code enumerate one instance of every registered implementation.
//
// A plug-in family is identified by its contract type B, usually an
// interface. Every family has its own registry; registries of different
// families never share entries. A family's registry is created the first
// time something registers against it and lives until the process exits.
//
// Registering a concrete type is a single file-scope declaration in the
// implementation's own package:
//
//	func init() {
//		registry.Register[shapes.Shape, Circle]()
//	}
//
// or, equivalently,
//
//	var _ = registry.Register[shapes.Shape, Circle]()
//
// The package is then linked into a program by importing it, typically
// with a blank import from main. No other call is needed:
//
//	for _, s := range registry.Plugins[shapes.Shape]() {
//		fmt.Println(s.Name())
//	}
//
// Register always constructs the plug-in as new(T); plug-ins that need
// constructor arguments are not supported. The *T must implement B.
//
// Enumeration order is registration order, which is the order in which
// the Go runtime runs package init functions. That order depends on the
// import graph and is not something callers should rely on.
//
// Registering a type that does not implement the contract, or registering
// the same concrete type twice in one family, panics during init. Those
// are programming errors and fail every binary and test that links the
// offending package. A storage fault (a family at capacity, or a panic
// while storing) is different: the registration is dropped, a warning is
// logged, and start-up continues. A program under such pressure may
// therefore see fewer plug-ins than were declared.
//
// Registration is expected to happen during init, which the runtime runs
// on a single goroutine. Queries after init may run concurrently.
package registry
