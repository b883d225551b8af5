// meta/meta.go
package meta

// GO_ROUTINES defines the default number of goroutines searching a board.
// One goroutine searches depth first without locking.
const GO_ROUTINES = 1

// SPLIT_PLY defines how many plies below the root are searched in parallel.
const SPLIT_PLY = 2

// TABLE_SIZE defines the initial capacity of the memo table.
const TABLE_SIZE = 1 << 16

// SHARDS defines the number of independently locked shards of a shared memo table.
const SHARDS = 64

// MAX_DEPTH is the largest move budget a board key can hold.
const MAX_DEPTH = 255
