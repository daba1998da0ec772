// Package testdb provides utilities for tests that run against a real
// PostgreSQL database.
//
// Integration tests are opt-in: they run only when DATABASE_URL (or
// USERAPI_TEST_DATABASE_URL) points at a disposable database, and are skipped
// otherwise. The schema is brought up to date with the embedded migrations
// and every test runs inside a transaction that is rolled back afterwards.
//
//	func TestSomething(t *testing.T) {
//	    pool := testdb.SetupTestPool(t)
//	    testdb.WithTx(t, pool, func(t *testing.T, tx pgx.Tx) {
//	        userStore := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
