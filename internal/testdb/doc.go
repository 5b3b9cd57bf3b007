//go:build integration

// Package testdb provides helpers for PostgreSQL integration tests.
//
// Tests run against the database named by DATABASE_URL and are skipped when
// it is unset. Each test body runs inside a transaction that is rolled back
// afterwards, so tests can run in parallel against the same schema:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDB(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        ...
//	    })
//	}
package testdb
