package output

// Local state keys owned by the cart store.
const (
	// LocalStateKeyUser holds the serialized Session, absent for guests.
	LocalStateKeyUser = "user"
	// LocalStateKeyCart holds the serialized cart line array.
	LocalStateKeyCart = "cart"
	// LocalStateKeyDeviceID holds the stable per-installation identifier,
	// generated on first hydrate.
	LocalStateKeyDeviceID = "device_id"
)

// LocalState interface - Output port
// Durable key-value storage surviving process restarts, the gateway's analog
// of browser localStorage. It is a passive mirror written synchronously after
// every in-memory mutation; nothing else writes to it.
type LocalState interface {
	// Get returns the stored value for key, or (nil, nil) when the key is absent.
	// Returns an error only on a storage access failure.
	Get(key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
