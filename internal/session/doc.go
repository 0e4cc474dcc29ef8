package session

// Package session tracks the single logical session: the authenticated user,
// the current screen, and the department/semester/course selection cursor.
// Screen changes go through explicit transitions so the selection invariants
// hold by construction. The guest expiry countdown lives here as well.
