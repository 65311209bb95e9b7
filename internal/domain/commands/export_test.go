package commands

// ResolveTargetDirectory exports resolveTargetDirectory for testing.
var ResolveTargetDirectory = resolveTargetDirectory //nolint:gochecknoglobals // test export

// TryRegister exports tryRegister for testing.
var TryRegister = tryRegister //nolint:gochecknoglobals // test export

// TryUnregister exports tryUnregister for testing.
var TryUnregister = tryUnregister //nolint:gochecknoglobals // test export

// TrackedLocks reports how many directories the command currently tracks locks for.
func (it *SynchronizeCommand) TrackedLocks() int {
	return it.locks.size()
}
