package ports

import "go.trai.ch/remake/internal/core/domain"

// Hasher defines the interface for fingerprinting graph state.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable digest of the snapshot.
	Fingerprint(snap domain.Snapshot) string
}
