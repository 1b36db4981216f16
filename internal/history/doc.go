// Package history persists identification requests in SQLite.
//
// Every daemon-handled request is recorded with its prediction, model,
// score, and timing so operators can audit recent traffic. The store keeps
// a bounded number of entries and prunes the oldest rows on insert.
package history
