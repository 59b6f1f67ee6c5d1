// Package ports defines the driven-side interfaces of the configurator:
// configuration persistence, catalog reads, order storage, and distributed
// locking. Adapters implement these; the core and the session manager
// depend only on the interfaces.
package ports
