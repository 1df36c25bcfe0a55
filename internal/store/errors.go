package store

import "errors"

// Sentinel errors returned by the in-memory bookmark model. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNodeNotFound is returned when a handle does not name a node.
	ErrNodeNotFound = errors.New("bookmark node not found")

	// ErrNotFolder is returned when a node is inserted under a bookmark or
	// directly under the root.
	ErrNotFolder = errors.New("parent is not a folder")

	// ErrNotBookmark is returned when bookmark-only data is set on a folder.
	ErrNotBookmark = errors.New("node is not a bookmark")

	// ErrIndexOutOfRange is returned when an insertion index is outside the
	// children of the target folder.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPermanentNode is returned when a mutation targets the root or a
	// permanent folder.
	ErrPermanentNode = errors.New("permanent node cannot be modified")

	// ErrCycle is returned when a move would place a node below itself.
	ErrCycle = errors.New("move would create a cycle")

	// ErrDuplicateGUID is returned when a GUID is already taken by another
	// node or by another persisted row.
	ErrDuplicateGUID = errors.New("duplicate guid")

	// ErrDuplicateID is returned by Restore for repeated node ids.
	ErrDuplicateID = errors.New("duplicate node id")

	ErrInvalidGUID  = errors.New("invalid guid")
	ErrInvalidKind  = errors.New("invalid bookmark kind")
	ErrRootNotFound = errors.New("root node not found")
)

// Sentinel errors returned by repository methods.
var (
	// ErrFaviconNotFound is returned when no icon is stored for a page URL.
	ErrFaviconNotFound = errors.New("favicon not found")

	// ErrUnsupportedDriver is returned for a database driver other than
	// sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
