// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool with retries, Migrate applies goose
// migrations from an fs.FS (usually an embed.FS shipped with the package that
// owns the schema) and the error helpers classify *pgconn.PgError codes so
// callers can map constraint violations onto domain errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, auth.Migrations, "migrations", cfg, log); err != nil {
//		return err
//	}
package pg
