// Package config defines configuration for the countdown CLI.
//
// Configuration can be provided via, in increasing precedence:
//   - Built-in defaults
//   - YAML configuration file (-config)
//   - Environment variables (COUNTDOWN_ prefix)
//   - Command-line flags
//
// # File Format
//
//	interval: 1s
//	log_level: warn
//	event_log: /tmp/countdown.clog
//	messages:
//	  banner: "⏳ Countdown Timer"
//	  prompt: "Enter countdown time in seconds:"
//	  remaining: "Time remaining: %d seconds"
//	  invalid: "❌ Please enter a valid number."
//	  done: "⏰ Time's up!"
//
// Omitted keys keep their defaults.
package config
