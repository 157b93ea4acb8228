// Package session provides the client-side persistence of the logged-in
// identity.
//
// # Overview
//
// The local database keeps at most one session row (role, name, email and
// bearer token), so a restarted client comes back as the same user without
// prompting again. The Repository interface is implemented by
// SQLiteRepository over a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// Typical Usage
//
//	repo := session.NewSQLiteRepository(db)
//	_ = repo.Save(ctx, s)
//	s, _ := repo.Get(ctx) // nil when nobody is logged in
//	_ = repo.Clear(ctx)
package session
