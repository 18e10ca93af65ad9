// Package core defines the shared contracts of the fraud client runtime:
// transport request/response shapes, the credential slot, the cache and
// session-broadcast interfaces, configuration, and the error envelope every
// operation returns.
package core
