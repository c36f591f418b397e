package backend

import "context"

// Backend defines the operations of the log-query service.
// All implementations must be safe for concurrent use.
type Backend interface {
	// Connect sends the S3 region/endpoint preference to the service.
	Connect(ctx context.Context, cfg ConnectionConfig) (*ConnectResult, error)

	// QuickLoad reads a URI with the given format and row limit.
	QuickLoad(ctx context.Context, req QuickRequest) (*QuickResult, error)

	// RunQuery executes an arbitrary SQL statement.
	RunQuery(ctx context.Context, req QueryRequest) (*ResultSet, error)

	// Address returns the base address requests are sent to.
	Address() string
}
