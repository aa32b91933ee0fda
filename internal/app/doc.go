// Package app contains the core application logic: the App struct, its
// configuration, and the bootstrap lifecycle (activate the loader manifest,
// seed the object graph, report), decoupled from any specific entry point
// such as the CLI or the test harness.
package app
