package database

// DataStore defines the unified interface for all data operations needed by the
// services. It is composed of the domain-specific repository interfaces so
// consumers can depend on the smallest one they need.
type DataStore interface {
	EntryRepository
}
