// Package main provides the entry point for the Pentagon RBAC data service.
// It initializes and runs a web server using the Fiber framework that exposes
// users, groups and permissions along with their many-to-many relationships
// through a REST API. The application uses gorm for data persistence and
// computes a user's effective permissions transitively through group
// membership.
package main
