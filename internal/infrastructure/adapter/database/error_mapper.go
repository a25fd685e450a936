package database

import (
	"errors"

	errs "github.com/amirhossein-jamali/account-ledger/internal/domain/error"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Vendor names used in the classification table
const (
	VendorPostgres = "postgres"
	VendorMySQL    = "mysql"
	VendorSQLite   = "sqlite"
	VendorH2       = "h2"
)

// ClassificationRules is the vendor code table. Supporting another store means
// adding rows here and an extractor below.
var ClassificationRules = []errs.CodeRule{
	// PostgreSQL, SQLSTATE
	{Vendor: VendorPostgres, StatePrefix: "23505", Kind: errs.KindDuplicateKey},
	{Vendor: VendorPostgres, StatePrefix: "42", Kind: errs.KindInvalidStatement},
	{Vendor: VendorPostgres, StatePrefix: "08", Kind: errs.KindUnavailable},
	{Vendor: VendorPostgres, StatePrefix: "53300", Kind: errs.KindUnavailable},
	{Vendor: VendorPostgres, StatePrefix: "57P0", Kind: errs.KindUnavailable},

	// MySQL / MariaDB server and client error numbers
	{Vendor: VendorMySQL, From: 1062, To: 1062, Kind: errs.KindDuplicateKey},
	{Vendor: VendorMySQL, From: 1586, To: 1586, Kind: errs.KindDuplicateKey},
	{Vendor: VendorMySQL, From: 1054, To: 1054, Kind: errs.KindInvalidStatement},
	{Vendor: VendorMySQL, From: 1064, To: 1064, Kind: errs.KindInvalidStatement},
	{Vendor: VendorMySQL, From: 1146, To: 1146, Kind: errs.KindInvalidStatement},
	{Vendor: VendorMySQL, From: 1040, To: 1040, Kind: errs.KindUnavailable},
	{Vendor: VendorMySQL, From: 2002, To: 2013, Kind: errs.KindUnavailable},

	// SQLite extended result codes
	{Vendor: VendorSQLite, From: 1555, To: 1555, Kind: errs.KindDuplicateKey},
	{Vendor: VendorSQLite, From: 2067, To: 2067, Kind: errs.KindDuplicateKey},
	{Vendor: VendorSQLite, From: 1, To: 1, Kind: errs.KindInvalidStatement},
	{Vendor: VendorSQLite, From: 5, To: 6, Kind: errs.KindUnavailable},
	{Vendor: VendorSQLite, From: 14, To: 14, Kind: errs.KindUnavailable},
	{Vendor: VendorSQLite, From: 261, To: 262, Kind: errs.KindUnavailable},
	{Vendor: VendorSQLite, From: 517, To: 517, Kind: errs.KindUnavailable},

	// H2 error codes
	{Vendor: VendorH2, From: 23001, To: 23001, Kind: errs.KindDuplicateKey},
	{Vendor: VendorH2, From: 23505, To: 23505, Kind: errs.KindDuplicateKey},
	{Vendor: VendorH2, From: 42000, To: 42999, Kind: errs.KindInvalidStatement},
}

// NewErrorClassifier returns a classifier knowing every driver linked into the service
func NewErrorClassifier() *errs.Classifier {
	return errs.NewClassifier(
		ClassificationRules,
		pgxCode,
		pqCode,
		mysqlCode,
		sqliteCode,
	)
}

func pgxCode(err error) (errs.VendorCode, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errs.VendorCode{}, false
	}
	return errs.VendorCode{Vendor: VendorPostgres, State: pgErr.Code}, true
}

func pqCode(err error) (errs.VendorCode, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return errs.VendorCode{}, false
	}
	return errs.VendorCode{Vendor: VendorPostgres, State: string(pqErr.Code)}, true
}

func mysqlCode(err error) (errs.VendorCode, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return errs.VendorCode{}, false
	}
	return errs.VendorCode{Vendor: VendorMySQL, Number: int(myErr.Number)}, true
}

func sqliteCode(err error) (errs.VendorCode, bool) {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return errs.VendorCode{}, false
	}
	code := int(liteErr.ExtendedCode)
	if code == 0 {
		code = int(liteErr.Code)
	}
	return errs.VendorCode{Vendor: VendorSQLite, Number: code}, true
}
