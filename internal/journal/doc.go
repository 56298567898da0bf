// Package journal provides an optional local record of dispatch attempts.
//
// It exists for troubleshooting unattended installs (cron jobs, monitoring
// hooks): when enabled, every attempt lands in a local SQLite file with its
// outcome. Appends are best-effort; a journal failure never fails a
// dispatch.
package journal
