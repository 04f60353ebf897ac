package config

import "time"

// Base application details
const AppName = "vellum"
const ConfigDirName = "vellum"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "vellum.log"

// Editing behavior
const DefaultMaxUndoDepth = 100
const SystemClipboard = true

// Synchronization preferences
const DefaultSyncInterval = 15 * time.Minute

// Config watcher
const watchDebounce = 200 * time.Millisecond
