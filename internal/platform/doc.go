package platform

// Package platform contains OS integration: creating output directories,
// naming exported frame files and opening a folder in the system file manager.
