// Package logx configures pushover's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable on stderr (short timestamp + short caller)
//   - Optional systemd journal sink for cron/server installs
//
// Stdout is reserved for the CLI contract (silent on success), so every
// sink writes elsewhere.
package logx
