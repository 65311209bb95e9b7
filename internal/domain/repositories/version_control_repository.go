package repositories

import "context"

// VersionControlRepository drives a local version control tool.
// Every operation returns the trimmed standard output on success, or an
// *entities.ExecutionError carrying the captured error output.
type VersionControlRepository interface {
	// Clone clones remoteURL into parentDir/targetName with reference checked out.
	Clone(ctx context.Context, parentDir, reference, remoteURL, targetName string) (string, error)

	// Fetch refreshes the remote-tracking references of the working copy in dir.
	Fetch(ctx context.Context, dir string) (string, error)

	// Checkout switches the working tree in dir to reference.
	Checkout(ctx context.Context, dir, reference string) (string, error)

	// Pull fast-forwards the current branch of the working copy in dir.
	Pull(ctx context.Context, dir string) (string, error)
}
