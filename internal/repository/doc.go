// Package repository implements raw-SQL persistence over database/sql.
//
// Repositories are thin: one struct per table, parameterized queries,
// RETURNING id on inserts, sql.ErrNoRows translated to a (nil, nil)
// result so services can treat "absent" as a value rather than an error.
// No repository opens transactions; every handler invocation runs its
// statements auto-committed.
package repository
