// Package trips is the client's offline cache of trip details.
//
// Each row holds one trip as a sealed JSON payload keyed by trip id. The
// repository never sees plaintext: callers seal with cryptox.SealJSON before
// Save and open with cryptox.OpenJSON after Get or List.
//
//	repo := trips.NewSQLiteRepository(db)
//	_ = repo.Save(ctx, trips.CachedTrip{ID: id, Payload: sealed, UpdatedAt: now})
//	all, _ := repo.List(ctx)
package trips
