package service

// Store is the durable key-value collaborator everything persists
// through. Get reports absence with the bool rather than an error so a
// first run is indistinguishable from a deliberately empty store. Writes
// are assumed synchronous and durable.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}
