package platform

// Package platform contains OS integration glue: opening URLs and files with
// the system handler and preparing output directories.
