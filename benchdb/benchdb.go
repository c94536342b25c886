// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdb stores comparison reports in a SQL database, so
// runs can be kept and inspected over time.
//
// Persistence is optional: the core benchrun library never touches a
// database. Callers that want a history open a DB and hand each
// Report to SaveReport.
package benchdb

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/microbench/benchrun"
)

// DB is a run-history store backed by a SQL database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a
// connection to driverName. It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Timestamp TIMESTAMP,
	Statistic VARCHAR(16),
	Replications INTEGER
);
CREATE TABLE IF NOT EXISTS Results (
	RunID BIGINT,
	Rank INTEGER,
	Name VARCHAR(255),
	Completed INTEGER,
	Failures INTEGER,
	Summary DOUBLE PRECISION,
	Relative DOUBLE PRECISION,
	PRIMARY KEY (RunID, Rank),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs(Timestamp, Statistic, Replications) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare("INSERT INTO Results(RunID, Rank, Name, Completed, Failures, Summary, Relative) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	return nil
}

// A Run describes one stored comparison run.
type Run struct {
	ID           int64
	Timestamp    time.Time
	Statistic    string
	Replications int
}

// A Result is one stored candidate row of a run, ranked fastest
// first.
type Result struct {
	RunID     int64
	Rank      int
	Name      string
	Completed int
	Failures  int
	Summary   float64
	Relative  float64
}

// SaveReport stores rep as a new run and returns its run ID.
func (db *DB) SaveReport(ctx context.Context, replications int, rep *benchrun.Report) (runID int64, err error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.StmtContext(ctx, db.insertRun).ExecContext(ctx, time.Now().UTC(), rep.Statistic, replications)
	if err != nil {
		return 0, err
	}
	runID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for rank, row := range rep.Rows {
		_, err = tx.StmtContext(ctx, db.insertResult).ExecContext(ctx,
			runID, rank, row.Name, row.Completed, row.Failures, row.Summary.Center, row.Relative)
		if err != nil {
			return 0, err
		}
	}
	return runID, nil
}

// Runs lists all stored runs, newest first.
func (db *DB) Runs(ctx context.Context) ([]Run, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID, Timestamp, Statistic, Replications FROM Runs ORDER BY RunID DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Statistic, &r.Replications); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the stored rows of one run, ranked fastest first.
func (db *DB) Results(ctx context.Context, runID int64) ([]Result, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT RunID, Rank, Name, Completed, Failures, Summary, Relative FROM Results WHERE RunID = ? ORDER BY Rank", runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.RunID, &r.Rank, &r.Name, &r.Completed, &r.Failures, &r.Summary, &r.Relative); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the database connections, releasing any open
// resources.
func (db *DB) Close() error {
	if err := db.insertRun.Close(); err != nil {
		return err
	}
	if err := db.insertResult.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
