package models

// APIServer is the HTTP front of the relay.
type APIServer interface {
	Start()
	Shutdown() error
}
