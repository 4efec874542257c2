package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StorageConfig holds settings for the snapshot store.
type StorageConfig struct {
	// Enabled turns on the save, restore and list commands.
	Enabled bool

	// Dir is the badger directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps snapshots for the life of the process only.
	InMemory bool
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		Enabled:  true,
		InMemory: true,
	}
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s.Enabled && !s.InMemory && s.Dir == "" {
		return fmt.Errorf("on-disk storage needs a directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
