package repository

// CacheRepository caches serialized calculation results keyed by a hash
// of their full input snapshot.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
