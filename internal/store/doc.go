package store

// Package store owns all mutable application state: users, courses with
// their material files, and discussion messages. Collections are replaced
// wholesale on every mutation, never edited in place, so readers always
// observe a consistent snapshot. Permission checks happen in the policy
// package before a mutation is requested; the store enforces only structural
// invariants (the protected root account, upload limits, semester range).
